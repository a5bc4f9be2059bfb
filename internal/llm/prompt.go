package llm

import "fmt"

// BuildMenuCleanupPrompt asks the model to restructure raw OCR output
// from a menu photo. The caller treats any failure as non-fatal and
// keeps the raw text.
func BuildMenuCleanupPrompt(rawText string) string {
	return "Please clean up and structure this OCR text from a restaurant menu. " +
		"Extract menu items with prices and organize them clearly. " +
		"Remove any OCR artifacts and fix spelling errors. " +
		"Here's the raw OCR text:\n\n" + rawText
}

// BuildCommandPrompt embeds a free-text staff command in the fixed
// intent-extraction template. The three worked examples pin down the
// shape the model should return.
func BuildCommandPrompt(command string) string {
	return fmt.Sprintf(`Parse this restaurant/bar management command and return a JSON object with the following structure:
{
  "action": "add|update|delete|86|un86",
  "item": "item name",
  "type": "wine|cocktail|special",
  "details": {
    "price": number (if mentioned),
    "description": "string (if mentioned)",
    "ingredients": "string (for cocktails)",
    "type": "string (wine type, cocktail type, etc.)"
  }
}

Command: "%s"

Examples:
- "86 the Malbec" -> {"action": "86", "item": "Malbec", "type": "wine"}
- "Add The Fig Old Fashioned to signature cocktails for $16" -> {"action": "add", "item": "The Fig Old Fashioned", "type": "cocktail", "details": {"price": 16, "type": "signature"}}
- "Remove the happy hour special" -> {"action": "delete", "item": "happy hour special", "type": "special"}

Return only the JSON object, no other text.`, command)
}
