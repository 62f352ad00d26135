package agent

import (
	"context"

	"github.com/etnz/travelpack"
	"github.com/etnz/travelpack/docs"
	"github.com/etnz/travelpack/renderer"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

func systemInstruction(text string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: text}}}
}

func newFacilitator(model string, experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: systemInstruction(`
			You help the user pack for a trip and keep track of their belongings.

			Learn about the experts' skills from the Tools and ask them questions.
			They keep the context of your previous questions.

			Always check the inventory before asserting where something is.
			You cannot change the inventory: when the user wants to, tell them which pack
			command to run, for instance "pack move socks 2 home suitcase".
			`),
		},
		Library: NewLibrary(experts),
	}
}

// NewKeeper returns the expert in charge of the inventory.
func NewKeeper(model string, inv *travelpack.Inventory) *Expert {
	lib := inventoryFunctions(inv)
	locations, _ := docs.GetTopic("locations")
	return &Expert{
		Name: "Keeper",
		Description: `The Keeper knows the user's inventory: every item, its quantity and its location.
		Ask the Keeper whenever you need to know what is where.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: systemInstruction(`
			You keep the user's inventory. Use the Tools to read it, never guess.
			Names and locations are case-sensitive, try close variants when nothing is found.

			` + locations),
		},
		Library: NewLibrary(lib),
	}
}

// NewTraveler returns an expert on travelling, grounded with Google Search.
func NewTraveler(model string) *Expert {
	return &Expert{
		Name: "Traveler",
		Description: `The Traveler is an experienced traveler. Ask about what to bring for a destination,
		a season or an activity, and about the weather or local regulations.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: systemInstruction(`
			You are an experienced traveler. You give short and practical packing advice,
			grounded with Google Search when it depends on recent facts like the weather.
			`),
		},
	}
}

// inventoryFunctions are the read-only tools over inv.
func inventoryFunctions(inv *travelpack.Inventory) []Function {
	return []Function{
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "ListItems",
				Description: "ListItems lists the items in the inventory, all of them or only those at a given location.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"location": {
							Type:        genai.TypeString,
							Description: "The location to list, like 'home' or 'suitcase'. Empty for every location.",
						},
					},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown table of items with their quantity and location.",
				},
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				location, err := stringArg(args, "location")
				if err != nil {
					return "", err
				}
				if location == "" {
					return renderer.ItemsMarkdown(renderer.NewAllItems(inv)), nil
				}
				return renderer.ItemsMarkdown(renderer.NewLocationItems(inv, location)), nil
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "FindItem",
				Description: "FindItem returns every location where an item is stored, with the quantity at each.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name": {
							Type:        genai.TypeString,
							Description: "The exact item name.",
						},
					},
					Required: []string{"name"},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown table of the matching items, or 'Item not found.'.",
				},
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				name, err := stringArg(args, "name")
				if err != nil {
					return "", err
				}
				return renderer.FoundMarkdown(renderer.NewFound(name, inv.FindAll(name)...)), nil
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Locations",
				Description: "Locations summarizes every location in use with its number of items and units.",
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown table of locations.",
				},
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				return renderer.LocationsMarkdown(renderer.NewLocations(inv)), nil
			},
		},
	}
}
