package advisory

import "krishisahay/pkg/i18n"

// NewExpert builds the market-advice panel responder. Priority is
// market > disease > general, so "disease affecting price" is a market
// question.
func NewExpert() *Responder {
	return &Responder{
		rules: []Rule{
			{Topic: TopicMarket, Match: Keywords("price", "sell", "mandi", "rate", "wait", "trend", "forecast")},
			{Topic: TopicDisease, Match: Keywords("disease", "pest", "yellow", "spot", "leaves")},
		},
		fallback:  TopicGeneral,
		templates: expertTemplates,
		welcome: map[i18n.Language]string{
			i18n.English: "Hello! I'm your KrishiSahay Expert powered by IBM Watsonx. I can provide personalized farming advice, market insights, and help you make data-driven decisions. Ask me anything about your crops! 🌾",
			i18n.Hindi:   "नमस्ते! मैं IBM Watsonx द्वारा संचालित आपका कृषिसहाय विशेषज्ञ हूं। मैं व्यक्तिगत खेती सलाह, बाजार अंतर्दृष्टि प्रदान कर सकता हूं और डेटा-संचालित निर्णय लेने में आपकी मदद कर सकता हूं। अपनी फसलों के बारे में कुछ भी पूछें! 🌾",
			i18n.Telugu:  "హలో! నేను IBM Watsonx ద్వారా నడిచే మీ కృషిసహాయ్ నిపుణుడిని. నేను వ్యక్తిగత వ్యవసాయ సలహా, మార్కెట్ అంతర్దృష్టులను అందించగలను మరియు డేటా-ఆధారిత నిర్ణయాలు తీసుకోవడంలో మీకు సహాయపడగలను. మీ పంటల గురించి ఏదైనా అడగండి! 🌾",
			i18n.Tamil:   "வணக்கம்! நான் IBM Watsonx மூலம் இயங்கும் உங்கள் கிருஷிசஹாய் நிபுணர். தனிப்பயன் விவசாய ஆலோசனை, சந்தை நுண்ணறிவுகளை வழங்கலாம் மற்றும் தரவு அடிப்படையிலான முடிவுகளை எடுக்க உதவலாம். உங்கள் பயிர்களைப் பற்றி எதையும் கேளுங்கள்! 🌾",
		},
		suggestions: []Suggestion{
			{Label: "💰 Sell Now?", Question: "Should I sell my crop now or wait?"},
			{Label: "🌾 Market Trend", Question: "What is the current market trend for wheat?"},
			{Label: "🔬 Disease Help", Question: "My crop leaves have yellow spots, what should I do?"},
			{Label: "📈 Price Forecast", Question: "What will be the price of rice next month?"},
		},
	}
}

var expertTemplates = i18n.Table{
	string(TopicMarket): {
		i18n.English: `📊 **Market Analysis:**

Based on current market data, I can see prices are 15% above the 3-year average. This is a strong SELL signal.

**My Recommendation:**
- Consider selling within the next 7-10 days
- Check e-NAM portal for potentially better rates than local mandi
- Factor in storage costs if you plan to hold

⚠️ This is advisory - final decision rests with you.`,
		i18n.Hindi: `📊 **बाजार विश्लेषण:**

वर्तमान बाजार डेटा के आधार पर, मैं देख रहा हूं कि कीमतें 3-वर्षीय औसत से 15% ऊपर हैं। यह एक मजबूत बिक्री संकेत है।

**मेरी सिफारिश:**
- अगले 7-10 दिनों में बेचने पर विचार करें
- स्थानीय मंडी की तुलना में ई-नाम पोर्टल पर बेहतर दर मिल सकती है
- भंडारण लागत पर विचार करें यदि होल्ड करना चाहते हैं

⚠️ यह सलाह है, अंतिम निर्णय आपका है।`,
	},
	string(TopicDisease): {
		i18n.English: `🔬 **Disease/Pest Analysis:**

Based on your description, this could be Leaf Spot disease.

**Immediate Action:**
1. Remove affected leaves immediately
2. Spray Mancozeb @ 2.5g/L
3. Repeat after 7 days

**Prevention:**
- Follow crop rotation
- Use certified seeds
- Ensure proper drainage

📸 Upload a photo in the Diagnosis Portal for accurate identification.`,
		i18n.Hindi: `🔬 **रोग/कीट विश्लेषण:**

आपके विवरण के आधार पर, यह पत्ती धब्बा रोग (Leaf Spot) हो सकता है।

**तत्काल कार्रवाई:**
1. प्रभावित पत्तियों को तुरंत हटाएं
2. Mancozeb @ 2.5g/L का छिड़काव करें
3. 7 दिनों बाद दोहराएं

**रोकथाम:**
- फसल चक्र अपनाएं
- प्रमाणित बीज का उपयोग करें
- जल निकासी सुनिश्चित करें

📸 सटीक निदान के लिए Diagnosis Portal में फोटो अपलोड करें।`,
	},
	string(TopicGeneral): {
		i18n.English: `🌱 **KrishiSahay Expert Advice:**

Analyzing your query, I can provide personalized recommendations.

Please provide more specific information:
• Your crop name
• Current problem (if any)
• Your location/district

I'm here to help! 🤝`,
		i18n.Hindi: `🌱 **कृषिसहाय विशेषज्ञ सलाह:**

आपके प्रश्न का विश्लेषण करते हुए, मैं आपको व्यक्तिगत सिफारिशें दे सकता हूं।

कृपया अधिक विशिष्ट जानकारी प्रदान करें:
• आपकी फसल का नाम
• वर्तमान समस्या (यदि कोई हो)
• आपका स्थान/जिला

मैं आपकी मदद के लिए यहां हूं! 🤝`,
	},
}
