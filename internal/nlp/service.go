package nlp

import (
	"context"
	"fmt"

	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/cocktail"
	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/eightysix"
	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/llm"
	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/special"
	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/wine"
)

// Service turns a free-text command into store mutations: one model
// call to extract the intent, then one or two gateway calls.
type Service struct {
	llm       llm.Client
	wines     wine.Repository
	cocktails cocktail.Repository
	specials  special.Repository
	log       eightysix.Repository
}

func NewService(
	client llm.Client,
	wines wine.Repository,
	cocktails cocktail.Repository,
	specials special.Repository,
	log eightysix.Repository,
) *Service {
	return &Service{
		llm:       client,
		wines:     wines,
		cocktails: cocktails,
		specials:  specials,
		log:       log,
	}
}

// Execute parses and dispatches one command. A model or parse failure
// aborts before any store call; store failures during dispatch surface
// as-is.
func (s *Service) Execute(ctx context.Context, command string) (*Command, *Result, error) {
	response, err := s.llm.Complete(ctx, llm.BuildCommandPrompt(command))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse command: %w", err)
	}

	cmd, err := ExtractCommand(response)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse command: %w", err)
	}

	result, err := s.dispatch(ctx, cmd)
	if err != nil {
		return cmd, nil, err
	}
	return cmd, result, nil
}

func (s *Service) dispatch(ctx context.Context, cmd *Command) (*Result, error) {
	switch cmd.Type {
	case "wine":
		return s.executeWine(ctx, cmd)
	case "cocktail":
		return s.executeCocktail(ctx, cmd)
	case "special":
		return s.executeSpecial(ctx, cmd)
	default:
		return nil, fmt.Errorf("unknown item type: %s", cmd.Type)
	}
}

// --------------------------------------------------
// Wine actions: 86, un86, add
// --------------------------------------------------
func (s *Service) executeWine(ctx context.Context, cmd *Command) (*Result, error) {
	switch cmd.Action {
	case "86":
		matched, err := s.wines.SetEightySixed(ctx, cmd.Item, true)
		if err != nil {
			return nil, err
		}

		// the log references the first matched row only
		var itemID *string
		if len(matched) > 0 {
			itemID = &matched[0].ID
		}
		if err := s.log.Append(ctx, cmd.Item, "wine", itemID); err != nil {
			return nil, err
		}

		return &Result{
			Success: true,
			Message: fmt.Sprintf("86'd wine: %s", cmd.Item),
			Data:    matched,
		}, nil

	case "un86":
		matched, err := s.wines.SetEightySixed(ctx, cmd.Item, false)
		if err != nil {
			return nil, err
		}
		return &Result{
			Success: true,
			Message: fmt.Sprintf("Un-86'd wine: %s", cmd.Item),
			Data:    matched,
		}, nil

	case "add":
		w := &wine.Wine{
			Name:  cmd.Item,
			Type:  orDefault(cmd.Details.Type, "unknown"),
			Price: cmd.Details.Price,
		}
		if cmd.Details.Description != "" {
			w.Description = &cmd.Details.Description
		}
		if err := s.wines.Create(ctx, w); err != nil {
			return nil, err
		}
		return &Result{
			Success: true,
			Message: fmt.Sprintf("Added wine: %s", cmd.Item),
			Data:    w,
		}, nil

	default:
		return nil, fmt.Errorf("unknown wine action: %s", cmd.Action)
	}
}

// --------------------------------------------------
// Cocktail actions: 86, add
// --------------------------------------------------
func (s *Service) executeCocktail(ctx context.Context, cmd *Command) (*Result, error) {
	switch cmd.Action {
	case "86":
		matched, err := s.cocktails.SetEightySixed(ctx, cmd.Item, true)
		if err != nil {
			return nil, err
		}

		var itemID *string
		if len(matched) > 0 {
			itemID = &matched[0].ID
		}
		if err := s.log.Append(ctx, cmd.Item, "cocktail", itemID); err != nil {
			return nil, err
		}

		return &Result{
			Success: true,
			Message: fmt.Sprintf("86'd cocktail: %s", cmd.Item),
			Data:    matched,
		}, nil

	case "add":
		ck := &cocktail.Cocktail{
			Name:        cmd.Item,
			Ingredients: orDefault(cmd.Details.Ingredients, "TBD"),
			Price:       cmd.Details.Price,
			IsSignature: cmd.Details.Type == "signature",
		}
		ckType := orDefault(cmd.Details.Type, "classic")
		ck.Type = &ckType

		if err := s.cocktails.Create(ctx, ck); err != nil {
			return nil, err
		}
		return &Result{
			Success: true,
			Message: fmt.Sprintf("Added cocktail: %s", cmd.Item),
			Data:    ck,
		}, nil

	default:
		return nil, fmt.Errorf("unknown cocktail action: %s", cmd.Action)
	}
}

// --------------------------------------------------
// Special actions: add, delete (soft)
// --------------------------------------------------
func (s *Service) executeSpecial(ctx context.Context, cmd *Command) (*Result, error) {
	switch cmd.Action {
	case "add":
		sp := &special.Special{
			Name:     cmd.Item,
			Price:    cmd.Details.Price,
			IsActive: true,
		}
		if cmd.Details.Description != "" {
			sp.Description = &cmd.Details.Description
		}
		spType := orDefault(cmd.Details.Type, "daily")
		sp.Type = &spType

		if err := s.specials.Create(ctx, sp); err != nil {
			return nil, err
		}
		return &Result{
			Success: true,
			Message: fmt.Sprintf("Added special: %s", cmd.Item),
			Data:    sp,
		}, nil

	case "delete":
		matched, err := s.specials.DeactivateByName(ctx, cmd.Item)
		if err != nil {
			return nil, err
		}
		return &Result{
			Success: true,
			Message: fmt.Sprintf("Removed special: %s", cmd.Item),
			Data:    matched,
		}, nil

	default:
		return nil, fmt.Errorf("unknown special action: %s", cmd.Action)
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
