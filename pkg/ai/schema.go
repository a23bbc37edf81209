package ai

import "github.com/google/generative-ai-go/genai"

// resumeSchema constrains structured-output calls to the record shape.
// Entry ids are deliberately absent: identifiers are assigned locally, never
// by the service.
func resumeSchema() *genai.Schema {
	entryDates := map[string]*genai.Schema{
		"startDate":   {Type: genai.TypeString},
		"endDate":     {Type: genai.TypeString},
		"current":     {Type: genai.TypeBoolean},
		"description": {Type: genai.TypeString},
	}

	experience := map[string]*genai.Schema{
		"company": {Type: genai.TypeString},
		"role":    {Type: genai.TypeString},
	}
	for k, v := range entryDates {
		experience[k] = v
	}

	education := map[string]*genai.Schema{
		"institution": {Type: genai.TypeString},
		"degree":      {Type: genai.TypeString},
	}
	for k, v := range entryDates {
		education[k] = v
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"personalInfo": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"fullName": {Type: genai.TypeString},
					"email":    {Type: genai.TypeString},
					"phone":    {Type: genai.TypeString},
					"location": {Type: genai.TypeString},
					"linkedin": {Type: genai.TypeString},
					"website":  {Type: genai.TypeString},
				},
			},
			"summary": {Type: genai.TypeString},
			"experience": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeObject, Properties: experience},
			},
			"education": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeObject, Properties: education},
			},
			"skills": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"references": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":    {Type: genai.TypeString},
						"role":    {Type: genai.TypeString},
						"company": {Type: genai.TypeString},
						"email":   {Type: genai.TypeString},
						"phone":   {Type: genai.TypeString},
					},
				},
			},
		},
	}
}
