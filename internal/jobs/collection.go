package jobs

import "github.com/MohanKrishnaTeja/jobAnalyzer/pkg/types"

// Collection is the ordered accumulation of listings across per-role
// searches. Order is accumulation order; nothing here re-sorts.
type Collection []types.JobListing

func (c Collection) Merge(more []types.JobListing) Collection {
	return append(c, more...)
}

// Dedupe drops listings whose identity tuple was already seen, keeping the
// first occurrence. Identity is the exact (title, company, location,
// description) tuple; no fuzzy matching.
func (c Collection) Dedupe() Collection {
	seen := make(map[identity]bool, len(c))
	out := make(Collection, 0, len(c))
	for _, job := range c {
		id := identityOf(job)
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, job)
	}
	return out
}

func (c Collection) Top(n int) Collection {
	if len(c) <= n {
		return c
	}
	return c[:n]
}

// Descriptions returns up to n listing descriptions in collection order.
func (c Collection) Descriptions(n int) []string {
	if n > len(c) {
		n = len(c)
	}
	out := make([]string, 0, n)
	for _, job := range c[:n] {
		out = append(out, job.Description)
	}
	return out
}

type identity struct {
	title, company, location, description string
}

func identityOf(j types.JobListing) identity {
	return identity{j.Title, j.Company, j.Location, j.Description}
}
