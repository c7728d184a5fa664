package i18n

var builtin = Table{
	// navigation
	"dashboard": {English: "Dashboard", Hindi: "डैशबोर्ड", Telugu: "డాష్‌బోర్డ్", Tamil: "டாஷ்போர்டு"},
	"market":    {English: "Market", Hindi: "बाजार", Telugu: "మార్కెట్", Tamil: "சந்தை"},
	"advisory":  {English: "Advisory", Hindi: "सलाहकार", Telugu: "సలహా", Tamil: "ஆலோசனை"},
	"schemes":   {English: "Schemes", Hindi: "योजनाएं", Telugu: "పథకాలు", Tamil: "திட்டங்கள்"},
	"diagnosis": {English: "Diagnosis", Hindi: "निदान", Telugu: "నిర్ధారణ", Tamil: "நோயறிதல்"},

	// header cards
	"weather":          {English: "Weather", Hindi: "मौसम", Telugu: "వాతావరణం", Tamil: "வானிலை"},
	"temperature":      {English: "Temperature", Hindi: "तापमान", Telugu: "ఉష్ణోగ్రత", Tamil: "வெப்பநிலை"},
	"rainProbability":  {English: "Rain Probability", Hindi: "बारिश की संभावना", Telugu: "వర్షం సంభావ్యత", Tamil: "மழை வாய்ப்பு"},
	"marketPulse":      {English: "Market Pulse", Hindi: "बाजार नाड़ी", Telugu: "మార్కెట్ పల్స్", Tamil: "சந்தை துடிப்பு"},
	"livePrice":        {English: "Live Price", Hindi: "लाइव मूल्य", Telugu: "ప్రత్యక్ష ధర", Tamil: "நேரடி விலை"},
	"vs3YearAvg":       {English: "vs 3-Year Avg", Hindi: "3-वर्ष औसत से", Telugu: "3-సంవత్సర సగటు vs", Tamil: "3-ஆண்டு சராசரி"},
	"soilIntelligence": {English: "Soil Intelligence", Hindi: "मिट्टी बुद्धिमत्ता", Telugu: "నేల తెలివి", Tamil: "மண் நுண்ணறிவு"},
	"systemHealth":     {English: "System Health", Hindi: "सिस्टम स्वास्थ्य", Telugu: "సిస్టమ్ ఆరోగ్యం", Tamil: "அமைப்பு நிலை"},
	"offlineDatabaseReady": {
		English: "Offline Database Ready",
		Hindi:   "ऑफ़लाइन डेटाबेस तैयार",
		Telugu:  "ఆఫ్‌లైన్ డేటాబేస్ సిద్ధం",
		Tamil:   "ஆஃப்லைன் தரவுத்தளம் தயார்",
	},

	// panels
	"verifiedAnswer": {
		English: "Verified Database Answer",
		Hindi:   "सत्यापित डेटाबेस उत्तर",
		Telugu:  "ధృవీకరించబడిన డేటాబేస్ జవాబు",
		Tamil:   "சரிபார்க்கப்பட்ட தரவுத்தள பதில்",
	},
	"expertAdvice": {English: "AI Expert Advice", Hindi: "AI विशेषज्ञ सलाह", Telugu: "AI నిపుణుల సలహా", Tamil: "AI நிபுணர் ஆலோசனை"},
	"fromFaiss": {
		English: "From FAISS Knowledge Base",
		Hindi:   "FAISS ज्ञान आधार से",
		Telugu:  "FAISS నాలెడ్జ్ బేస్ నుండి",
		Tamil:   "FAISS அறிவுத் தளத்திலிருந்து",
	},
	"poweredByWatsonx": {
		English: "Powered by IBM Watsonx",
		Hindi:   "IBM Watsonx द्वारा संचालित",
		Telugu:  "IBM Watsonx ద్వారా",
		Tamil:   "IBM Watsonx மூலம்",
	},

	// diagnosis
	"uploadImage": {
		English: "Upload Image for Diagnosis",
		Hindi:   "निदान के लिए छवि अपलोड करें",
		Telugu:  "నిర్ధారణ కోసం చిత్రాన్ని అప్‌లోడ్ చేయండి",
		Tamil:   "நோயறிதலுக்கு படத்தை பதிவேற்றவும்",
	},
	"dragDrop": {
		English: "Drag & Drop or Click to Upload",
		Hindi:   "खींचें और छोड़ें या अपलोड करने के लिए क्लिक करें",
		Telugu:  "డ్రాగ్ & డ్రాప్ లేదా అప్‌లోడ్ చేయడానికి క్లిక్ చేయండి",
		Tamil:   "இழுத்து விடுங்கள் அல்லது பதிவேற்ற கிளிக் செய்யவும்",
	},
	"scanning": {English: "Scanning...", Hindi: "स्कैन हो रहा है...", Telugu: "స్కాన్ అవుతోంది...", Tamil: "ஸ்கேன் செய்கிறது..."},

	// subsidy sentinel
	"subsidySentinel": {English: "Subsidy Sentinel", Hindi: "सब्सिडी प्रहरी", Telugu: "సబ్సిడీ సెంటినెల్", Tamil: "மானியக் காவலர்"},
	"applyNow":        {English: "Apply Now", Hindi: "अभी आवेदन करें", Telugu: "ఇప్పుడు దరఖాస్తు చేయండి", Tamil: "இப்போது விண்ணப்பிக்கவும்"},

	// voice
	"voiceAssistant": {English: "Voice Assistant", Hindi: "वॉयस असिस्टेंट", Telugu: "వాయిస్ అసిస్టెంట్", Tamil: "குரல் உதவியாளர்"},
	"listening":      {English: "Listening...", Hindi: "सुन रहा हूं...", Telugu: "వింటున్నాను...", Tamil: "கேட்கிறேன்..."},
	"askQuestion":    {English: "Ask your question", Hindi: "अपना सवाल पूछें", Telugu: "మీ ప్రశ్న అడగండి", Tamil: "உங்கள் கேள்வியைக் கேளுங்கள்"},

	// common
	"loading": {English: "Loading...", Hindi: "लोड हो रहा है...", Telugu: "లోడ్ అవుతోంది...", Tamil: "ஏற்றுகிறது..."},
	"noData":  {English: "No data available", Hindi: "कोई डेटा उपलब्ध नहीं", Telugu: "డేటా అందుబాటులో లేదు", Tamil: "தரவு இல்லை"},
	"demoMode": {
		English: "Demo Mode - Replace with live feed",
		Hindi:   "डेमो मोड - लाइव फ़ीड से बदलें",
		Telugu:  "డెమో మోడ్ - లైవ్ ఫీడ్‌తో భర్తీ చేయండి",
		Tamil:   "டெமோ பயன்முறை - நேரடி ஊட்டத்துடன் மாற்றவும்",
	},
}
