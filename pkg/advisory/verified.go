package advisory

import "krishisahay/pkg/i18n"

const verifiedPreamble = "Based on verified agricultural data:\n\n"

// NewVerified builds the knowledge-base panel responder. Answers exist in
// English only and every answer carries the verified-data preamble.
// Priority: pest > fertilizer > weather > rotation > general.
func NewVerified() *Responder {
	return &Responder{
		rules: []Rule{
			{Topic: TopicPest, Match: Keywords("pest", "kide", "keet", "control")},
			{Topic: TopicFertilizer, Match: Keywords("fertilizer", "khad", "urea", "application")},
			{Topic: TopicWeather, Match: Keywords("weather", "mausam", "rain", "prepare")},
			{Topic: TopicRotation, Match: Keywords("rotation", "yield", "crop")},
		},
		fallback:   TopicGeneral,
		templates:  verifiedTemplates,
		preamble:   verifiedPreamble,
		source:     "FAISS + KCC Database",
		welcomeSrc: "FAISS Knowledge Base",
		welcome: map[i18n.Language]string{
			i18n.English: "Welcome to KrishiSahay Verified Database. Ask any question about farming practices, pest control, or crop management. Responses are strictly grounded in verified agricultural knowledge.",
		},
		suggestions: []Suggestion{
			{Label: "🐛 Pest Control", Question: "How to control pests in my crops?"},
			{Label: "🌱 Fertilizer Guide", Question: "What is the best fertilizer application method?"},
			{Label: "🌧️ Weather Advisory", Question: "How should I prepare for rain season?"},
			{Label: "🌾 Crop Rotation", Question: "What crops should I rotate for better yield?"},
		},
	}
}

var verifiedTemplates = i18n.Table{
	string(TopicPest): {i18n.English: `**Integrated Pest Management (IPM) Recommendations:**

1. **Biological Control**: Use Trichogramma cards (50,000/ha) for stem borer control
2. **Cultural Practices**: Remove and destroy affected plant parts
3. **Chemical Control**: Apply Chlorantraniliprole @ 0.3ml/L only when pest population exceeds Economic Threshold Level (ETL)

⚠️ Always use protective equipment when handling pesticides.`},
	string(TopicFertilizer): {i18n.English: `**Fertilizer Application Guide:**

Based on your soil test results:
- **Nitrogen (N)**: Apply in 3 splits - 50% basal, 25% at tillering, 25% at panicle initiation
- **Phosphorus (P)**: Full dose as basal application
- **Potassium (K)**: 50% basal, 50% at panicle initiation

💡 Consider foliar spray of 2% Urea during grain filling stage for better yield.`},
	string(TopicWeather): {i18n.English: `**Weather-Based Advisory:**

Current conditions suggest:
- Delay irrigation if rain is expected within 48 hours
- Apply fungicide preventively before prolonged wet spells
- Ensure proper drainage to prevent waterlogging

📊 Check Market Intelligence for price forecasts considering weather patterns.`},
	string(TopicRotation): {i18n.English: `**Crop Rotation Guidelines:**

Recommended rotation for better yield:
- **Year 1**: Rice/Wheat (cereal)
- **Year 2**: Legumes (Gram, Lentil) - fixes nitrogen
- **Year 3**: Oilseeds (Mustard, Groundnut)
- **Year 4**: Return to cereals

🌱 Benefits: Improved soil fertility, pest control, and 15-20% higher yields.`},
	string(TopicGeneral): {i18n.English: `**Agricultural Advisory:**

Your query has been processed against our verified knowledge base containing 15,000+ agricultural records from KCC, ICAR, and State Agricultural Universities.

For more specific guidance, please provide:
- Crop name
- Current growth stage
- Specific problem symptoms

🌱 All recommendations follow Good Agricultural Practices (GAP) guidelines.`},
}
