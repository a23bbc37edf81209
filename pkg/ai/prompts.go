package ai

import "fmt"

func enhancePrompt(text, roleContext string) string {
	return fmt.Sprintf(`You are a professional resume writer. Rewrite the following resume text to be more impactful, using active verbs and quantifiable results where possible. Keep it concise.

Context: %s

Original Text:
%q

Return ONLY the rewritten text as a bulleted list using hyphens. Do not add quotes or markdown blocks.`, roleContext, text)
}

func summaryPrompt(historyJSON string) string {
	return fmt.Sprintf(`Write a professional 3-sentence resume summary for a candidate with the following experience history: %s. Focus on expertise and career goals.`, historyJSON)
}

func parsePrompt(rawText string) string {
	return fmt.Sprintf(`Extract resume information from the following text into a JSON object.

Text to parse:
%s`, rawText)
}

func tailorPrompt(resumeText, linkedinText, jobDescription, location string) string {
	return fmt.Sprintf(`Act as an expert resume writer and career coach.
I need you to generate a tailored resume JSON object based on the following inputs.

1. **Current Resume**: %s
2. **LinkedIn Profile Data**: %s
3. **Target Job Description**: %s
4. **Target Location**: %s

**Instructions**:
- MERGE the Current Resume and LinkedIn Profile data to create a comprehensive history.
- FILTER and PRIORITIZE experiences, skills, and summary to match the keywords and requirements of the **Target Job Description**.
- REWRITE bullet points to highlight achievements relevant to the target role.
- Set the location in personalInfo to %q.
- Ensure the output fits the JSON schema provided.`, resumeText, linkedinText, jobDescription, location, location)
}
