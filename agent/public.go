package agent

import (
	"context"
	"fmt"

	"github.com/fennix/emporium"
	"github.com/fennix/emporium/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
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
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user runs a small betting syndicate: partners pool capital, the operator places
			wagers on their behalf and retains a commission on winning wagers. The user is here
			primarily to understand balances, wager outcomes and partner figures.

			Devise a plan of questions to ask each expert and come up with the best response
			to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst returns the expert for grounded, up-to-date sports information.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is an expert sports analyst,
		very well aware of leagues, teams, fixtures and bookmakers,
		and of the latest results and news.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in sports and sports betting markets. You can search and find
			about anything related to teams, fixtures, results and odds. You leverage Google
			Search to ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewBookkeeper returns the expert in charge of reading the syndicate book.
func NewBookkeeper(bookDir string) *Expert {
	lib := []Function{summaryFunc(bookDir), movementsFunc(bookDir)}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the syndicate's book.
		He can compute the balances, profits and movement ledger of the whole book or of a
		single partner.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the syndicate's book.
				You know how to use the Tools to extract relevant information about balances,
				wagers, deposits and withdrawals. You are part of a team of experts; pardon
				their approximative language and figure out what they meant.

				Use the available tools to get information about the book
				  - aggregated figures per scope (the whole book, or one partner id)
				  - the movement ledger with its running balance
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// scopeProperty is the shared declaration of the scope argument.
var scopeProperty = &genai.Schema{
	Type: genai.TypeString,
	Description: `The scope to compute: "ALL" for the whole book, or a partner id like "P1".
	The whole book is the default.`,
}

func summaryFunc(bookDir string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Summary",
			Description: `Summary computes the aggregated figures of a scope: balances, deposits,
			withdrawals, stake and return totals, profit split, win rate, ROI and pending exposure.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"scope": scopeProperty,
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted summary of the scope's figures.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return callBook(bookDir, id, "Summary", args, func(book *emporium.Book, scope string) string {
				return renderer.Summary(displayName(book, scope), book.Stats(scope))
			})
		},
	}
}

func movementsFunc(bookDir string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Movements",
			Description: `Movements lists the scope's movement ledger, newest first, with the
			running balance after every movement.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"scope": scopeProperty,
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the scope's movements.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return callBook(bookDir, id, "Movements", args, func(book *emporium.Book, scope string) string {
				return renderer.Movements(displayName(book, scope), book.Movements(scope))
			})
		},
	}
}

// callBook loads the book, resolves the scope argument and renders.
func callBook(bookDir, id, name string, args map[string]any, render func(*emporium.Book, string) string) *genai.FunctionResponse {
	fail := func(err error) *genai.FunctionResponse {
		return &genai.FunctionResponse{
			ID:   id,
			Name: name,
			Response: map[string]any{
				"error": err.Error(),
			},
		}
	}

	scope := emporium.ScopeAll
	if iscope, ok := args["scope"]; ok {
		s, ok := iscope.(string)
		if !ok {
			return fail(fmt.Errorf("argument 'scope' is not a string as expected but %T", iscope))
		}
		if s != "" {
			scope = s
		}
	}

	book, err := emporium.FindBook(bookDir, "")
	if err != nil {
		return fail(fmt.Errorf("could not load book: %w", err))
	}

	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": render(book, scope),
		},
	}
}

func displayName(book *emporium.Book, scope string) string {
	if scope == emporium.ScopeAll {
		return "All partners"
	}
	return book.PartnerName(scope)
}
