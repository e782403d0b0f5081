package agent

import (
	"context"
	"fmt"

	"github.com/etnz/networth/docs"
	"github.com/etnz/networth/view"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(model string, experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and keep context of your previous questions.

			The user comes to understand their net worth: what they own, what they owe and
			how it evolves. Devise a plan of questions to ask to each expert and come up
			with the best response to the user's request.

			Never invent figures. Every amount you quote must come from an expert.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAdvisor returns an expert grounded on Google Search, for questions about
// markets, products and institutions.
func NewAdvisor(model string) *Expert {
	return &Expert{
		Name: "Advisor",
		Description: `This is a financial advisor, aware of financial products, lenders and markets.
		Ask the Advisor whenever you need recent or general information, like typical mortgage rates
		or the news about a company the user holds stock in.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a financial advisor. You leverage Google Search to ground your assertions.
			You know how to relate recent news to the user's assets and debts.
			`}}},
		},
	}
}

// NewAnalyst returns the expert that reads the user's records through src.
func NewAnalyst(model string, src view.Reader) *Expert {
	lib := []Function{SummaryFunc(src), AssetsFunc(src), DebtsFunc(src), HistoryFunc(src)}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. They read the user's assets, debts and net worth
		and compute the relevant figures about the user's wealth.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the analyst in charge of the user's net worth records.
				Use the available Tools to get information about
				  - the totals (assets, debts, net worth, profit and loss)
				  - the list of assets
				  - the list of debts
				  - the recorded values of an asset over time

				The vocabulary used by the records is:

				` + must(docs.Topic("glossary")),
			}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, args map[string]any) (string, error)
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }

// Call runs the function and wraps its output, or its error, into a response.
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	resp := &genai.FunctionResponse{ID: id, Name: f.Decl.Name}
	out, err := f.Func(ctx, args)
	if err != nil {
		resp.Response = map[string]any{"error": err.Error()}
		return resp
	}
	resp.Response = map[string]any{"output": out}
	return resp
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func markdownResponse(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description}
}

// SummaryFunc returns the current totals as a markdown table.
func SummaryFunc(src view.SummaryReader) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Summary",
			Description: "Summary returns today's total assets, total debts, net worth and total profit or loss.",
			Response:    markdownResponse("A markdown table of the four totals."),
		},
		Func: func(ctx context.Context, _ map[string]any) (string, error) {
			s, err := src.Summary(ctx)
			if err != nil {
				return "", fmt.Errorf("could not load summary: %w", err)
			}
			return view.SummaryMarkdown(s), nil
		},
	}
}

// AssetsFunc returns every asset as a markdown table.
func AssetsFunc(src view.AssetLister) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Assets",
			Description: `Assets lists every asset the user owns with its type, quantity, buy price,
			current value, total value, profit or loss, purchase date and ID.`,
			Response: markdownResponse("A markdown table of all the assets."),
		},
		Func: func(ctx context.Context, _ map[string]any) (string, error) {
			assets, err := src.ListAssets(ctx)
			if err != nil {
				return "", fmt.Errorf("could not load assets: %w", err)
			}
			return view.AssetsMarkdown(assets, view.Full), nil
		},
	}
}

// DebtsFunc returns every debt as a markdown table.
func DebtsFunc(src view.DebtLister) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Debts",
			Description: `Debts lists every debt the user owes with its type, principal, current value,
			interest rate, start date and ID.`,
			Response: markdownResponse("A markdown table of all the debts."),
		},
		Func: func(ctx context.Context, _ map[string]any) (string, error) {
			debts, err := src.ListDebts(ctx)
			if err != nil {
				return "", fmt.Errorf("could not load debts: %w", err)
			}
			return view.DebtsMarkdown(debts, view.Full), nil
		},
	}
}

// HistoryFunc returns the recorded values of one asset.
func HistoryFunc(src view.HistoryReader) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "History",
			Description: "History lists the values recorded over time for a single asset.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"asset_id": {
						Type:        genai.TypeString,
						Description: "The asset ID, as listed by the Assets function.",
					},
				},
				Required: []string{"asset_id"},
			},
			Response: markdownResponse("A markdown table of dates and values."),
		},
		Func: func(ctx context.Context, args map[string]any) (string, error) {
			id, err := stringArg(args, "asset_id")
			if err != nil {
				return "", err
			}
			asset, err := src.GetAsset(ctx, id)
			if err != nil {
				return "", fmt.Errorf("could not load asset %q: %w", id, err)
			}
			history, err := src.AssetHistory(ctx, id)
			if err != nil {
				return "", fmt.Errorf("could not load history of %q: %w", id, err)
			}
			return view.HistoryMarkdown(asset, history), nil
		},
	}
}

func stringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name]
	if !ok {
		return "", fmt.Errorf("argument %q is required", name)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q is not a string as expected but %T", name, v)
	}
	if s == "" {
		return "", fmt.Errorf("argument %q must not be empty", name)
	}
	return s, nil
}
