// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt holds the prompt templates sent to the model. Templates
// are data: each has a single substitution point and renders it verbatim.
package prompt

import (
	"bytes"
	"fmt"
	"text/template"
)

// Names accepted by Render.
const (
	NameAnalysis = "analysis"
	NamePost     = "post"
)

// analysisTmpl asks for a structured analysis of the paper text. The
// [INST] wrapping matches the Mistral instruct format of the default model.
var analysisTmpl = template.Must(template.New(NameAnalysis).Parse(`<s>[INST] Please analyze this research paper and extract the following components:
- Title and Authors (if available)
- Main research question or objective
- Key technical innovations
- Most significant results/findings
- Real-world applications or impact
- Future research implications

Text: {{.Text}}

Format your response as a structured analysis with clear headings. Focus on the most novel and impactful aspects. [/INST]</s>`))

// postTmpl turns an analysis into a LinkedIn post aimed at both ML
// researchers and a general tech audience.
var postTmpl = template.Must(template.New(NamePost).Parse(`<s>[INST] Create a LinkedIn post about this bio+AI research paper that will resonate with both ML researchers and the general tech community. The post should:

1. Open with a concise statement connecting the research to a broader scientific challenge
2. Present ONE key technical contribution, including:
   - The specific ML/bio innovation
   - Why existing approaches were insufficient
   - How this advances the field
3. Include one concrete example or application that demonstrates real-world impact
4. Maintain scientific rigor while using clear, precise language
5. Include 2-3 specific technical hashtags (e.g., #MachineLearning #BioinformaticsAI #ComputationalBiology)
6. Keep it under 1300 characters
7. Optional: one relevant emoji at the start
8. End with an insight that bridges technical and practical implications

Research Analysis: {{.Analysis}}

Guidelines:
- Be precise with technical terms - fellow researchers will notice inaccuracies
- Explain complex concepts by relating them to established ML/bio frameworks
- Include specific metrics or improvements where available
- Avoid oversimplification; instead, build bridges between technical and practical aspects
- Highlight interdisciplinary implications between bio and AI fields [/INST]</s>`))

// Analysis renders the analysis prompt for the extracted document text.
func Analysis(text string) (string, error) {
	return render(analysisTmpl, struct{ Text string }{Text: text})
}

// Post renders the LinkedIn post prompt for an analysis.
func Post(analysis string) (string, error) {
	return render(postTmpl, struct{ Analysis string }{Analysis: analysis})
}

// Render renders the named template with value substituted. It backs the
// CLI's prompt inspection command.
func Render(name, value string) (string, error) {
	switch name {
	case NameAnalysis:
		return Analysis(value)
	case NamePost:
		return Post(value)
	default:
		return "", fmt.Errorf("unknown prompt %q (want %s or %s)", name, NameAnalysis, NamePost)
	}
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %s prompt: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
