package recurring

import (
	"context"
	"fmt"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/events"
	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/rs/zerolog/log"
)

// MaxOccurrences limits how many transactions a single rule creates per
// run. Remaining occurrences are created by later runs.
const MaxOccurrences = 366

// Result summarizes a run.
type Result struct {
	Rules       int `json:"rules" example:"3"`       // Active rules checked
	Created     int `json:"created" example:"2"`     // Transactions created
	Deactivated int `json:"deactivated" example:"1"` // Rules that passed their end date
}

// TransactionID is the ID of the transaction created for the occurrence
// of the rule at the given time. It makes repeated runs idempotent.
func TransactionID(ruleID string, occurrence time.Time) string {
	return fmt.Sprintf("rec-%s-%s", ruleID, occurrence.Format("20060102"))
}

// Materialize creates the due transactions for all active rules.
func Materialize(ctx context.Context, now time.Time) (Result, error) {
	var rules []models.RecurringRule
	err := models.DB.WithContext(ctx).Where("is_active = ?", true).Order("id ASC").Find(&rules).Error
	if err != nil {
		return Result{}, err
	}

	return apply(ctx, rules, now)
}

// MaterializeUser creates the due transactions for the active rules of
// a user.
func MaterializeUser(ctx context.Context, userID string, now time.Time) (Result, error) {
	var rules []models.RecurringRule
	err := models.DB.WithContext(ctx).Where("is_active = ? AND user_id = ?", true, userID).Order("id ASC").Find(&rules).Error
	if err != nil {
		return Result{}, err
	}

	return apply(ctx, rules, now)
}

func apply(ctx context.Context, rules []models.RecurringRule, now time.Time) (Result, error) {
	result := Result{Rules: len(rules)}

	for _, rule := range rules {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		created, deactivated, err := applyRule(ctx, rule, now)
		result.Created += created
		if deactivated {
			result.Deactivated++
		}

		// A broken rule must not stop the others
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("rule", rule.ID).Msg("could not apply recurring rule")
		}
	}

	return result, nil
}

func applyRule(ctx context.Context, rule models.RecurringRule, now time.Time) (int, bool, error) {
	due, next, err := Due(rule, now, MaxOccurrences)
	if err != nil {
		return 0, false, err
	}

	transactions := make([]models.Transaction, 0, len(due))
	for _, occurrence := range due {
		transactions = append(transactions, models.Transaction{
			DefaultModel: models.DefaultModel{ID: TransactionID(rule.ID, occurrence), CreatedAt: occurrence},
			Type:         rule.Type,
			Amount:       rule.Amount,
			Category:     rule.CategoryID,
			Note:         rule.Note,
			UserID:       rule.UserID,
		})
	}

	// Transactions of earlier runs are kept as they are
	created, err := models.CreateMissing(transactions)
	if err != nil {
		return 0, false, err
	}

	deactivate := rule.EndDate != nil && next.After(*rule.EndDate)
	if len(due) > 0 || deactivate {
		err = models.Update(rule.ID, models.RecurringRule{NextDate: next, IsActive: !deactivate}, "NextDate", "IsActive")
		if err != nil {
			return int(created), false, err
		}
	}

	if created > 0 {
		for _, t := range transactions {
			e := events.ForTransaction(events.RecurringApplied, t)
			e.RuleID = rule.ID
			events.Publish(ctx, e)
		}

		log.Ctx(ctx).Info().Str("rule", rule.ID).Int64("created", created).Time("next", next).Msg("applied recurring rule")
	}

	return int(created), deactivate, nil
}
