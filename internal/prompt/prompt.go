// Package prompt holds the fixed post-mortem instruction template.
package prompt

import "strings"

const transcriptSlot = "{{transcript}}"

const reportTemplate = `You are a seasoned engineering manager and senior technical architect.
Analyze the team chat transcript below and produce a complete incident
post-mortem report with a clear chronological structure.

The report must contain exactly the following sections, in this order:

### 1. Incident Overview
Summarize the core of the incident in a single sentence.

### 2. Timeline
List every key moment in strict chronological order: who acted, what they
did, and what was observed. One bullet per moment, keeping the original
timestamps and names from the transcript.

### 3. Root Cause Analysis
State the technical root cause clearly and precisely.

### 4. Resolution
Describe the fix that was applied and who carried it out.

### 5. Lessons Learned
Distill the key takeaways from the incident and how similar problems can be
avoided in the future.

Base the report strictly on the transcript. Stay objective and do not add
anything the transcript does not mention. Output Markdown only, with no code
blocks.

---
[Transcript]
{{transcript}}
---
`

// SectionHeaders are the report headers the template demands, in the order
// they must appear.
var SectionHeaders = []string{
	"### 1. Incident Overview",
	"### 2. Timeline",
	"### 3. Root Cause Analysis",
	"### 4. Resolution",
	"### 5. Lessons Learned",
}

// Build inserts the transcript verbatim into the instruction template.
// No escaping, no trimming: the same transcript always yields the same
// prompt.
func Build(transcript string) string {
	return strings.Replace(reportTemplate, transcriptSlot, transcript, 1)
}
