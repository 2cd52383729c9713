package gen

// Prompt templates. Every template instructs the model to answer in a
// machine-splittable shape (comma lists or a pipe table); the parsing side
// lives in the Extractor and in internal/format.

const curriculumSkillsPrompt = `Analyze the following curriculum and extract all technical and non-technical skills.
Return ONLY a comma-separated list of skills. Do not include any other text.
Here is the curriculum:
`

const summarySkillsPrompt = `Extract all technical and non-technical skills from the following job market summary.
Return ONLY a comma-separated list of skills. Do not include any other text.
Here is the summary:
%s`

const jobRolePrompt = `Based on the following skills:
%s

Identify the top 3-4 most relevant job roles that match these skills.
Return ONLY a comma-separated list of job roles. For example: Data Analyst, Business Intelligence Analyst, Data Scientist
Do NOT include any other text or explanation.`

const jobSummaryPrompt = `Analyze these job descriptions and create a comprehensive summary that includes:
1. Common technical skills and requirements
2. Common soft skills and qualifications
3. Typical responsibilities and duties
4. Educational requirements
5. Experience requirements

Format the response as a structured summary with clear sections.
Here are the job descriptions:
`

const projectPrompt = `Based on the following skill: %s
Generate a project that demonstrates this skill.
Respond in English (US).
Provide ONLY a table with the following columns: "Project Title", "Project Description", "Technologies to be Used", "Implementation Brief", and "%% Chance of Shortlisting".
Do NOT include any introductory text, concluding text, or any other content outside of this table.`

const majorProjectPrompt = `Based on the following combined skills: %s
Generate a comprehensive project that demonstrates these skills together.
Respond in English (US).
Provide ONLY a table with the following columns: "Project Title", "Project Description", "Technologies to be Used", "Implementation Brief", and "%% Chance of Shortlisting".
Do NOT include any introductory text, concluding text, or any other content outside of this table.`

const jobProjectPrompt = `Based on the following job market summary:
%s

Generate a comprehensive project that would make a candidate stand out for these roles.
The project should:
1. Address key technical requirements
2. Demonstrate relevant soft skills
3. Showcase industry-standard practices
4. Be suitable for the specified experience level
5. Include modern technologies mentioned in the requirements

Respond in English (US).
Provide ONLY a table with the following columns: "Project Title", "Project Description", "Technologies to be Used", "Implementation Brief", "Key Skills Demonstrated", and "%% Chance of Shortlisting".
Do NOT include any introductory text, concluding text, or any other content outside of this table.`

const miniProjectsPrompt = `Based on the following job market summary:
%s

Generate 3 mini projects that would help a candidate build their skills for these roles.
Each project should:
1. Focus on different aspects of the job requirements
2. Be completable in 2-4 weeks
3. Use relevant technologies
4. Demonstrate practical skills

For each project, provide:
1. Project Title
2. Brief Description
3. Key Skills to Develop
4. Technologies to Use
5. Implementation Steps
6. Expected Learning Outcomes

Format the response as a structured list of projects.`
