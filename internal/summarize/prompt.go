// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"strings"
	"text/template"
)

// promptTemplate asks for four fixed Markdown sections so the response
// parses into a structured summary.
var promptTemplate = template.Must(template.New("summarize").Parse(`You are an expert AI research communicator. Summarize the following research paper for a general audience, using clear Markdown section headings for each part. Use simple, engaging language.

**Please structure your answer as follows:**

### Problem
Describe the main problem or challenge the paper addresses.

### Key Innovation
Explain what is new or unique about this work.

### Practical Impact
Describe how this research could be applied in the real world, or why it matters.

### Analogy / Intuitive Explanation
Explain the core idea using a simple analogy or metaphor, if possible.

---

Here are the extracted sections from the paper:
Title: {{.Title}}
{{if .Abstract}}
Abstract: {{.Abstract}}
{{end}}{{if .Introduction}}
Introduction: {{.Introduction}}
{{end}}{{if .Contributions}}
Contributions: {{.Contributions}}
{{end}}{{if .Conclusion}}
Conclusion: {{.Conclusion}}
{{end}}
---

**Write your summary below, using the section headings above. Don't write any Note in the beginning or end, just give the output in above 4 sections mentioned.**`))

type promptData struct {
	Title         string
	Abstract      string
	Introduction  string
	Contributions string
	Conclusion    string
}

// buildPrompt renders the summarization prompt from the section map
// produced by the sections package. Missing sections are omitted.
func buildPrompt(title string, sections map[string]string) string {
	data := promptData{
		Title:         title,
		Abstract:      sections["abstract"],
		Introduction:  sections["introduction"],
		Contributions: sections["contributions"],
		Conclusion:    sections["conclusion"],
	}
	var b strings.Builder
	// The template is static and the data is plain strings, so
	// execution cannot fail.
	_ = promptTemplate.Execute(&b, data)
	return b.String()
}
