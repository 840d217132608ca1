package assist

import (
	"fmt"
	"strings"
)

// maxSampleMembers caps how many member words of each class are shown to
// the model.
const maxSampleMembers = 5

// classifySystemPrompt instructs the model to return structured JSON only.
const classifySystemPrompt = `You are a rhyme classification assistant for song lyrics.
Assign each word to the existing rhyme class it rhymes with, judging by how the word is pronounced, not by how it is spelled.
Return ONLY a valid JSON object mapping each word to a class id, or to "NONE" if it rhymes with none of them.
No markdown, no explanation. Start with { and end with }.`

// buildClassifyPrompt lists the candidate words and the existing classes
// with sample members.
func buildClassifyPrompt(words []string, classes []Class) string {
	var sb strings.Builder
	sb.WriteString("Assign each WORD to one existing RHYME CLASS, or to \"NONE\".\n\n")

	sb.WriteString("RHYME CLASSES:\n")
	for _, c := range classes {
		members := c.Members
		if len(members) > maxSampleMembers {
			members = members[:maxSampleMembers]
		}
		sb.WriteString(fmt.Sprintf("- %s: %s\n", c.ID, strings.Join(members, ", ")))
	}
	sb.WriteString("\n")

	sb.WriteString("WORDS:\n")
	sb.WriteString(strings.Join(words, ", "))
	sb.WriteString("\n\n")

	sb.WriteString("RULES:\n")
	sb.WriteString("1. Judge by pronunciation, not spelling\n")
	sb.WriteString("2. Use \"NONE\" when no class fits; never invent a class id\n")
	sb.WriteString("3. Every word must appear exactly once in the JSON object\n")

	return sb.String()
}

// pronounceSystemPrompt demands bare IPA.
const pronounceSystemPrompt = `You are a pronunciation assistant.
Respond with ONLY the IPA transcription of the given word.
No slashes, no markdown, no explanation.`

// buildPronouncePrompt asks for one word.
func buildPronouncePrompt(word string) string {
	return fmt.Sprintf("Give the IPA pronunciation of the word: %s", word)
}
