package enrichment

type stepKey struct {
	category string
	crop     string
}

// steps - основные рекомендации справочника по паре категория/культура
var steps = map[stepKey]string{
	{CategoryPest, CropMaize}:   "Scout daily, apply recommended Bt pesticide per label, remove heavily infested plants",
	{CategoryPest, CropRice}:    "Apply recommended insecticide, maintain field hygiene, use resistant varieties",
	{CategoryPest, CropCassava}: "Apply systemic insecticide, remove affected parts, use clean planting material",
	{CategoryPest, CropTomato}:  "Apply appropriate pesticide, use yellow sticky traps, maintain spacing",

	{CategoryDisease, CropMaize}:   "Remove infected plants, apply fungicide, use resistant varieties",
	{CategoryDisease, CropRice}:    "Apply fungicide, remove infected plants, use certified seeds",
	{CategoryDisease, CropCassava}: "Use disease-free cuttings, remove infected leaves, consider tolerant varieties",
	{CategoryDisease, CropTomato}:  "Apply fungicide, remove affected leaves, improve air circulation",

	{CategoryFlood, CropMaize}:   "Open drainage channels, delay planting for 48 hours, avoid nitrogen top-dressing",
	{CategoryFlood, CropRice}:    "Open drainage channels, delay new planting for 72 hours, avoid nitrogen top-dressing",
	{CategoryFlood, CropCassava}: "Improve drainage, delay harvesting, monitor for root rot",
	{CategoryFlood, CropTomato}:  "Improve drainage immediately, delay planting, monitor for diseases",

	{CategoryDrought, CropMaize}:   "Apply mulch, use drought-tolerant varieties, consider irrigation",
	{CategoryDrought, CropRice}:    "Maintain water level, use drought-tolerant varieties, consider alternate wetting",
	{CategoryDrought, CropCassava}: "Apply mulch, use drought-tolerant varieties, consider irrigation",
	{CategoryDrought, CropTomato}:  "Apply mulch, use drought-tolerant varieties, consider drip irrigation",

	{CategoryInputNeed, CropMaize}:   "Register for input support, recommended seed variety list attached",
	{CategoryInputNeed, CropRice}:    "Register for input support, recommended seed variety list attached",
	{CategoryInputNeed, CropCassava}: "Register for input support, recommended cutting variety list attached",
	{CategoryInputNeed, CropTomato}:  "Register for input support, recommended seed variety list attached",
}
