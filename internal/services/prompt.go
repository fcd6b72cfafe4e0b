package services

import (
	"fmt"
	"strings"
)

// OutputKeys lists the keys of the result object in the order the prompt
// asks for them. The set is exhaustive.
var OutputKeys = []string{
	"overall_score",
	"analysis",
	"matching_skills",
	"missing_skills",
	"improvement_summary",
}

// ATSSystemMessage is sent as the system message of every analysis call.
const ATSSystemMessage = "You are an expert ATS analyzer with a strong commitment to accuracy and detail. " +
	"Your analysis must be methodical and precise, focusing on skills, education, experience, and projects (if present). " +
	"Your FINAL SCORE should be only on the basis of how well the candidate resume is aligned with the job description."

var outputKeyDescriptions = map[string]string{
	"overall_score":       `"a number between 0-100 representing overall match of resume with job description"`,
	"analysis":            `"Brief analysis text here..."`,
	"matching_skills":     `["Skill 1", "Skill 2"]`,
	"missing_skills":      `["Skill 3", "Skill 4"]`,
	"improvement_summary": `"a summary of everything that should be added to make the resume more aligned with the job description"`,
}

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildATSPrompt creates the user prompt for one resume / job description pair.
func (pb *PromptBuilder) BuildATSPrompt(resumeText, jobDescriptionText string) string {
	return fmt.Sprintf(`You are an expert ATS (Applicant Tracking System) analyst with years of experience in HR and recruitment.

Analyze the following resume against the job description, giving a score between 0-100 by focusing specifically on these key components:
1. Skills - Technical and soft skills that match the job description
2. Education - Relevance of degrees, certifications, and educational background
3. Work Experience - Relevant work history, roles, responsibilities, and achievements aligned with the job description
4. Projects (if present) - Personal or professional projects that demonstrate relevant abilities aligned with the job description

Resume details:
%s

Job Description:
%s

Follow this detailed analysis process:

1. First, extract all explicit requirements and preferences from the job description
2. For each key component, perform a systematic comparison:

   SKILLS ANALYSIS:
   - List all technical and soft skills mentioned in the job description
   - Compare against skills listed in the resume

   EDUCATION ANALYSIS:
   - Identify education requirements in the job description
   - Check if the candidate's degrees and certifications meet the requirements
   - Check certifications (if any) are aligned with job requirements

   EXPERIENCE ANALYSIS:
   - Assess relevance of previous roles to the job description
   - Check if the roles and responsibilities are clearly aligned with the job description

   PROJECTS ANALYSIS (if projects are present in the resume):
   - Assess technical alignment of projects with job description
   - Assess if project skills align with job description requirements

***IMPORTANT: This task requires MAXIMUM ACCURACY. You must carefully and thoroughly analyze the resume and job description before providing any scores. Take a methodical approach, comparing each element of the resume against the job requirements in detail.
Your final score should be only on the basis of how much the candidate resume is aligned with the job description.***

%s`, resumeText, jobDescriptionText, outputSchemaDirective())
}

func outputSchemaDirective() string {
	var sb strings.Builder
	sb.WriteString("Provide the output in EXACTLY the following JSON format:\n\n{\n")
	for i, key := range OutputKeys {
		sb.WriteString(fmt.Sprintf("    %q: %s", key, outputKeyDescriptions[key]))
		if i < len(OutputKeys)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")
	sb.WriteString(fmt.Sprintf("Important: You MUST use EXACTLY these keys in your response: %s. ", strings.Join(OutputKeys, ", ")))
	sb.WriteString("All of them are mandatory. Do not add additional keys or change the key names.")
	return sb.String()
}
