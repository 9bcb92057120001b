package support

import "fmt"

// Quick-help topics shown to the user, per language.
var quickKeywords = map[string][]string{
	"English": {
		"Voice Input Issues", "Database Questions", "How to Use",
		"Technical Problems", "Audio Upload", "Results Not Showing",
		"Getting Started", "Account Issues", "Performance Issues",
	},
	"Hindi": {
		"आवाज़ इनपुट समस्याएं", "डेटाबेस प्रश्न", "उपयोग कैसे करें",
		"तकनीकी समस्याएं", "ऑडियो अपलोड", "परिणाम नहीं दिख रहे",
		"शुरुआत करना", "खाता समस्याएं", "प्रदर्शन समस्याएं",
	},
}

// Translated keyword back to its English form for catalogue lookup.
var keywordToEnglish = map[string]string{
	"आवाज़ इनपुट समस्याएं": "Voice Input Issues",
	"डेटाबेस प्रश्न":       "Database Questions",
	"उपयोग कैसे करें":      "How to Use",
	"तकनीकी समस्याएं":      "Technical Problems",
	"ऑडियो अपलोड":          "Audio Upload",
	"परिणाम नहीं दिख रहे":  "Results Not Showing",
	"शुरुआत करना":          "Getting Started",
	"खाता समस्याएं":        "Account Issues",
	"प्रदर्शन समस्याएं":    "Performance Issues",
}

var keywordResponses = map[string]map[string]string{
	"Voice Input Issues": {
		"English": "For voice input issues: 1) Check microphone permissions 2) Close other audio apps 3) Speak clearly 4) Try using Chrome browser. Need more help?",
		"Hindi":   "आवाज़ इनपुट की समस्याओं के लिए: 1) माइक्रोफ़ोन अनुमतियाँ जाँचें 2) अन्य ऑडियो ऐप बंद करें 3) स्पष्ट रूप से बोलें 4) Chrome ब्राउज़र का उपयोग करें। और मदद चाहिए?",
	},
	"Database Questions": {
		"English": "Our database contains policy, claims, and insured persons data. You can ask questions like 'How many policies are active?' or 'Show claims from Mumbai'. What would you like to know?",
		"Hindi":   "हमारे डेटाबेस में पॉलिसी, दावे और बीमित व्यक्तियों का डेटा है। आप 'कितनी पॉलिसियां सक्रिय हैं?' या 'मुंबई से सभी दावे दिखाएं' जैसे प्रश्न पूछ सकते हैं। आप क्या जानना चाहते हैं?",
	},
}

// Suggestions returns the quick-help topics for a language. Unknown languages
// fall back to English.
func Suggestions(language string) []string {
	if keywords, ok := quickKeywords[language]; ok {
		return keywords
	}
	return quickKeywords["English"]
}

// KeywordAnswer returns the canned answer for a quick-help topic. The second
// return value reports whether the message matched a known topic.
func KeywordAnswer(message, language string) (string, bool) {
	keyword := message
	if english, ok := keywordToEnglish[keyword]; ok {
		keyword = english
	}

	responses, ok := keywordResponses[keyword]
	if !ok {
		if !isKnownKeyword(keyword) {
			return "", false
		}
		// Known topic without a dedicated answer yet.
		return defaultKeywordAnswer(message, language), true
	}

	if answer, ok := responses[language]; ok {
		return answer, true
	}
	return responses["English"], true
}

func isKnownKeyword(keyword string) bool {
	for _, k := range quickKeywords["English"] {
		if k == keyword {
			return true
		}
	}
	return false
}

func defaultKeywordAnswer(keyword, language string) string {
	switch language {
	case "Hindi":
		return fmt.Sprintf("मुझे %s के साथ आपकी मदद करने में खुशी होगी! क्या आप कृपया अपनी विशिष्ट समस्या के बारे में और विवरण दे सकते हैं?", keyword)
	default:
		return fmt.Sprintf("I'd be happy to help you with %s! Could you please provide more details about your specific issue?", keyword)
	}
}
