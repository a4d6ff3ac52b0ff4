// Package prompt builds the fixed instructional prompts sent to the judge.
// Each prompt instructs the judge to answer in a small JSON shape that the
// decode package understands.
package prompt

import (
	"encoding/json"
	"fmt"

	"github.com/relevia/relevia/internal/model"
)

// ForStatements builds the prompt that decomposes the actual output into
// atomic statements
func ForStatements(actualOutput string) string {
	return fmt.Sprintf(`Given the text, breakdown and generate a list of statements presented. Ambiguous statements and single words can be considered as statements, but only if outside of a coherent statement.

Example:
Example text:
Our new laptop model features a high-resolution Retina display for crystal-clear visuals. It also includes a fast-charging battery, giving you up to 12 hours of usage on a single charge.

{
    "statements": [
        "The new laptop model has a high-resolution Retina display.",
        "It includes a fast-charging battery with up to 12 hours of usage."
    ]
}
===== END OF EXAMPLE ======

**
IMPORTANT: Please make sure to only return in valid and parseable JSON format, with the "statements" key mapping to a list of strings. No words or explanation are needed. Ensure all strings are closed appropriately.
**

Text:
%s

JSON:
`, actualOutput)
}

// ForVerdicts builds the prompt that classifies each statement's relevance
// to the input. The judge is told the verdict count must equal the
// statement count; the classifier enforces that contract on the way back.
func ForVerdicts(input string, statements []model.Statement) string {
	texts := make([]string, len(statements))
	for i, s := range statements {
		texts[i] = s.Text
	}
	listJSON, err := json.MarshalIndent(texts, "", "    ")
	if err != nil {
		// A []string always marshals; keep the prompt usable regardless
		listJSON = []byte("[]")
	}

	return fmt.Sprintf(`For the provided list of statements, determine whether each statement is relevant to address the input.
Please generate a list of JSON with two keys: 'verdict' and 'reason'.
The 'verdict' key should STRICTLY be either a 'yes', 'idk' or 'no'. Answer 'yes' if the statement is relevant to addressing the original input, 'no' if the statement is irrelevant, and 'idk' if it is ambiguous (eg., not directly relevant but could be used as a supporting point to address the input).
The 'reason' is the reason for the verdict.
Provide a 'reason' ONLY if the answer is 'no'.
The provided statements are statements made in the actual output.

**
IMPORTANT: Please make sure to only return in valid and parseable JSON format, with the 'verdicts' key mapping to a list of JSON objects. Ensure all strings are closed appropriately.
Example input:
What features does the new laptop have?

Example statements:
[
    "The new laptop model has a high-resolution Retina display.",
    "Every purchase comes with a one-year warranty.",
    "Pineapples taste great on pizza."
]

Example JSON:
{
    "verdicts": [
        {
            "verdict": "yes"
        },
        {
            "verdict": "no",
            "reason": "A one-year warranty is a purchase benefit, not a feature of the laptop itself."
        },
        {
            "verdict": "no",
            "reason": "The statement about pineapples on pizza is completely irrelevant to the input, which asks about laptop features."
        }
    ]
}
===== END OF EXAMPLE ======

Since you are going to generate a verdict for each statement, the number of 'verdicts' SHOULD BE STRICTLY EQUAL to the number of statements.
**

Input:
%s

Statements:
%s

JSON:
`, input, string(listJSON))
}

// ForReason builds the prompt that composes the human-readable explanation
// of the score. irrelevantReasons may be empty, in which case the judge is
// told to phrase the explanation positively.
func ForReason(score float64, irrelevantReasons []string, input string) string {
	reasonsJSON := []byte("[]")
	if len(irrelevantReasons) > 0 {
		if data, err := json.MarshalIndent(irrelevantReasons, "", "    "); err == nil {
			reasonsJSON = data
		}
	}

	return fmt.Sprintf(`Given the answer relevancy score, the list of reasons of irrelevant statements made in the actual output, and the input, provide a CONCISE reason for the score. Explain why it is not higher, but also why it is at its current score.
The irrelevant statements represent things in the actual output that is irrelevant to addressing whatever is asked/talked about in the input.
If there is nothing irrelevant, just say something positive with an upbeat encouraging tone (but don't overdo it otherwise it gets annoying).

**
IMPORTANT: Please make sure to only return in JSON format, with the 'reason' key providing the reason. Ensure all strings are closed appropriately.

Example:
Example JSON:
{
    "reason": "The score is <answer_relevancy_score> because <your_reason>."
}
===== END OF EXAMPLE ======
**

Answer Relevancy Score:
%.2f

Reasons why the score can't be higher based on irrelevant statements in the actual output:
%s

Input:
%s

JSON:
`, score, string(reasonsJSON), input)
}
