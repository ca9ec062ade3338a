package analysis

import (
	"fmt"

	"google.golang.org/genai"
)

const classificationSystemInstruction = `
You are an expert infrastructure analyst for the NYC City Council.
Your job is to analyze images or video frames of city infrastructure issues (like flooding, potholes, trash).
Assess severity on a scale of 1-10 based on safety risk and cost to repair.
Estimate water depth if flooding is present.
Be concise and professional.
`

const classificationPrompt = `
Analyze these images/frames.

Tasks:
1. Identify the infrastructure issue (Flooding, Pothole, Trash, etc.).
2. Rate severity 1-10.
3. Estimate water depth if applicable (e.g., "6 inches", "2 feet"). If not applicable, use "N/A".
4. Provide a short 1-sentence description.
5. Estimate the cost to repair/fix this specific issue (e.g. "$5,000", "$1.2M"). Be realistic based on NYC infrastructure costs.
6. Identify the responsible NYC Department (e.g., "Transportation", "Sanitation", "Environmental", "Parks", "Education").
`

const budgetSystemInstruction = "You are a helpful data analyst for the City Council."

const spatialPrompt = `
Analyze this satellite image of a neighborhood.

Your goal is to identify "Transportation Deserts".
Look for areas that have:
1. High residential density (apartment complexes, closely packed houses).
2. NO visible public transportation infrastructure (no bus stops, no subway stations, no train tracks).

Return a JSON object containing:
1. A 'summary' string explaining the findings.
2. A 'boxes' array where you "point" to these specific desert areas using bounding boxes.

Each box should have:
- 'ymin', 'xmin', 'ymax', 'xmax' (Normalized coordinates 0-1).
- 'label' (e.g. "High Density Residential").
- 'reasoning' (e.g. "Multi-story apartments visible but nearest major road lacks bus shelters").
`

func geocodePrompt(address string) string {
	return fmt.Sprintf(`
Find the precise latitude and longitude coordinates for this address in New York City: %q.

CRITICAL OUTPUT FORMAT:
You must output the coordinates strictly in this format:
LAT: <latitude_number>, LNG: <longitude_number>

Example:
LAT: 40.7128, LNG: -74.0060
`, address)
}

func budgetPrompt(dataJSON []byte, query string) string {
	return fmt.Sprintf(`
Here is the budget data for NYC District 30 in JSON format:
%s

User Question: %s

Answer the question based strictly on the data provided.
Format the answer in Markdown.
Highlight key figures.
If the user asks for visualization suggestions, mention them in text.
`, dataJSON, query)
}

var classificationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"type":        {Type: genai.TypeString},
		"severity":    {Type: genai.TypeInteger},
		"waterDepth":  {Type: genai.TypeString},
		"description": {Type: genai.TypeString},
		"repairCost":  {Type: genai.TypeString},
		"department":  {Type: genai.TypeString},
	},
	Required: []string{"type", "severity", "waterDepth", "description", "repairCost", "department"},
}

var spatialSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"summary": {Type: genai.TypeString},
		"boxes": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"ymin":      {Type: genai.TypeNumber},
					"xmin":      {Type: genai.TypeNumber},
					"ymax":      {Type: genai.TypeNumber},
					"xmax":      {Type: genai.TypeNumber},
					"label":     {Type: genai.TypeString},
					"reasoning": {Type: genai.TypeString},
				},
				Required: []string{"ymin", "xmin", "ymax", "xmax", "label", "reasoning"},
			},
		},
	},
	Required: []string{"summary", "boxes"},
}
