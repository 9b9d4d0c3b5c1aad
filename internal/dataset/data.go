package dataset

import "github.com/mindful-ai-dude/multilingo/internal/language"

// Entry is one row of the bundled evaluation dataset.
type Entry struct {
	Source string
	Target string
	From   language.Language
	To     language.Language
}

// Table is the bundled Tamazight evaluation dataset. Order matters: searches
// return the first match in table order.
var Table = []Entry{
	// English to Tamazight
	{"Hello", "ⴰⵣⵓⵍ", language.English, language.Tamazight},
	{"Thank you", "ⵜⴰⵏⵎⵎⵉⵔⵜ", language.English, language.Tamazight},
	{"Good morning", "ⴰⵣⵓⵍ ⵏ ⵜⵓⴼⴰⵜ", language.English, language.Tamazight},
	{"How are you?", "ⵎⴰⵏⵉⵎⴽ ⵜⵍⵍⵉⴷ?", language.English, language.Tamazight},
	{"I need help", "ⵔⵉⵖ ⵜⵉⵡⵉⵙⵉ", language.English, language.Tamazight},
	{"Where is the hospital?", "ⵎⴰⵏⵉ ⵉⵍⵍⴰ ⵓⵙⴳⵏⴼ?", language.English, language.Tamazight},
	{"Call the police", "ⵙⵙⵉⵡⵍ ⵍⴱⵓⵍⵉⵙ", language.English, language.Tamazight},
	{"Emergency", "ⵜⴰⵔⵡⴰ", language.English, language.Tamazight},
	{"Water", "ⴰⵎⴰⵏ", language.English, language.Tamazight},
	{"Food", "ⵓⵛⵛⵉ", language.English, language.Tamazight},
	{"Doctor", "ⴰⵎⵙⴰⵡⴰⵍ", language.English, language.Tamazight},
	{"Medicine", "ⴰⵙⴰⴼⴰⵔ", language.English, language.Tamazight},
	{"Family", "ⵜⴰⵡⴰⵛⵜ", language.English, language.Tamazight},
	{"Home", "ⴰⵅⵅⴰⵎ", language.English, language.Tamazight},
	{"School", "ⵜⴰⵎⴰⵣⵉⵔⵜ", language.English, language.Tamazight},
	{"Work", "ⵜⴰⵡⵓⵔⵉ", language.English, language.Tamazight},
	{"Money", "ⵉⴷⵔⵉⵎⵏ", language.English, language.Tamazight},
	{"Time", "ⴰⴽⵓⴷ", language.English, language.Tamazight},
	{"Today", "ⴰⵙⵙⴰ", language.English, language.Tamazight},
	{"Tomorrow", "ⴰⵙⴽⴽⴰ", language.English, language.Tamazight},

	// Arabic to Tamazight
	{"مرحبا", "ⴰⵣⵓⵍ", language.Arabic, language.Tamazight},
	{"شكرا", "ⵜⴰⵏⵎⵎⵉⵔⵜ", language.Arabic, language.Tamazight},
	{"صباح الخير", "ⴰⵣⵓⵍ ⵏ ⵜⵓⴼⴰⵜ", language.Arabic, language.Tamazight},
	{"كيف حالك؟", "ⵎⴰⵏⵉⵎⴽ ⵜⵍⵍⵉⴷ?", language.Arabic, language.Tamazight},
	{"أحتاج مساعدة", "ⵔⵉⵖ ⵜⵉⵡⵉⵙⵉ", language.Arabic, language.Tamazight},
	{"أين المستشفى؟", "ⵎⴰⵏⵉ ⵉⵍⵍⴰ ⵓⵙⴳⵏⴼ?", language.Arabic, language.Tamazight},
	{"اتصل بالشرطة", "ⵙⵙⵉⵡⵍ ⵍⴱⵓⵍⵉⵙ", language.Arabic, language.Tamazight},
	{"طوارئ", "ⵜⴰⵔⵡⴰ", language.Arabic, language.Tamazight},
	{"ماء", "ⴰⵎⴰⵏ", language.Arabic, language.Tamazight},
	{"طعام", "ⵓⵛⵛⵉ", language.Arabic, language.Tamazight},
	{"طبيب", "ⴰⵎⵙⴰⵡⴰⵍ", language.Arabic, language.Tamazight},
	{"دواء", "ⴰⵙⴰⴼⴰⵔ", language.Arabic, language.Tamazight},
	{"عائلة", "ⵜⴰⵡⴰⵛⵜ", language.Arabic, language.Tamazight},
	{"بيت", "ⴰⵅⵅⴰⵎ", language.Arabic, language.Tamazight},
	{"مدرسة", "ⵜⴰⵎⴰⵣⵉⵔⵜ", language.Arabic, language.Tamazight},

	// French to Tamazight
	{"Bonjour", "ⴰⵣⵓⵍ", language.French, language.Tamazight},
	{"Merci", "ⵜⴰⵏⵎⵎⵉⵔⵜ", language.French, language.Tamazight},
	{"Comment allez-vous?", "ⵎⴰⵏⵉⵎⴽ ⵜⵍⵍⵉⴷ?", language.French, language.Tamazight},
	{"J'ai besoin d'aide", "ⵔⵉⵖ ⵜⵉⵡⵉⵙⵉ", language.French, language.Tamazight},
	{"Où est l'hôpital?", "ⵎⴰⵏⵉ ⵉⵍⵍⴰ ⵓⵙⴳⵏⴼ?", language.French, language.Tamazight},
	{"Appelez la police", "ⵙⵙⵉⵡⵍ ⵍⴱⵓⵍⵉⵙ", language.French, language.Tamazight},
	{"Urgence", "ⵜⴰⵔⵡⴰ", language.French, language.Tamazight},
	{"Eau", "ⴰⵎⴰⵏ", language.French, language.Tamazight},
	{"Nourriture", "ⵓⵛⵛⵉ", language.French, language.Tamazight},
	{"Médecin", "ⴰⵎⵙⴰⵡⴰⵍ", language.French, language.Tamazight},
	{"Médicament", "ⴰⵙⴰⴼⴰⵔ", language.French, language.Tamazight},
	{"Famille", "ⵜⴰⵡⴰⵛⵜ", language.French, language.Tamazight},

	// Tamazight to English
	{"ⴰⵣⵓⵍ", "Hello", language.Tamazight, language.English},
	{"ⵜⴰⵏⵎⵎⵉⵔⵜ", "Thank you", language.Tamazight, language.English},
	{"ⵎⴰⵏⵉⵎⴽ ⵜⵍⵍⵉⴷ?", "How are you?", language.Tamazight, language.English},
	{"ⵔⵉⵖ ⵜⵉⵡⵉⵙⵉ", "I need help", language.Tamazight, language.English},
	{"ⵎⴰⵏⵉ ⵉⵍⵍⴰ ⵓⵙⴳⵏⴼ?", "Where is the hospital?", language.Tamazight, language.English},
	{"ⵙⵙⵉⵡⵍ ⵍⴱⵓⵍⵉⵙ", "Call the police", language.Tamazight, language.English},
	{"ⵜⴰⵔⵡⴰ", "Emergency", language.Tamazight, language.English},
	{"ⴰⵎⴰⵏ", "Water", language.Tamazight, language.English},
	{"ⵓⵛⵛⵉ", "Food", language.Tamazight, language.English},
	{"ⴰⵎⵙⴰⵡⴰⵍ", "Doctor", language.Tamazight, language.English},

	// Tamazight to Arabic
	{"ⴰⵣⵓⵍ", "مرحبا", language.Tamazight, language.Arabic},
	{"ⵜⴰⵏⵎⵎⵉⵔⵜ", "شكرا", language.Tamazight, language.Arabic},
	{"ⵔⵉⵖ ⵜⵉⵡⵉⵙⵉ", "أحتاج مساعدة", language.Tamazight, language.Arabic},
	{"ⵜⴰⵔⵡⴰ", "طوارئ", language.Tamazight, language.Arabic},
	{"ⴰⵎⴰⵏ", "ماء", language.Tamazight, language.Arabic},

	// Tamazight to French
	{"ⴰⵣⵓⵍ", "Bonjour", language.Tamazight, language.French},
	{"ⵜⴰⵏⵎⵎⵉⵔⵜ", "Merci", language.Tamazight, language.French},
	{"ⵔⵉⵖ ⵜⵉⵡⵉⵙⵉ", "J'ai besoin d'aide", language.Tamazight, language.French},
	{"ⵜⴰⵔⵡⴰ", "Urgence", language.Tamazight, language.French},
	{"ⴰⵎⴰⵏ", "Eau", language.Tamazight, language.French},
}
