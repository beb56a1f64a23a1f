package normalize

import (
	"strings"

	"github.com/HuyTapCode05/quanlythuchi/internal/models"
)

// SavingsGoal parses a savings goal. The current amount starts at zero.
func SavingsGoal(raw map[string]any) Result[models.SavingsGoal] {
	if raw == nil {
		return failure[models.SavingsGoal]("", "savings goal is empty")
	}

	var r Result[models.SavingsGoal]
	g := &r.Value

	targetDate, err := date(raw, "targetDate", "target_date")
	if err != nil {
		return failure[models.SavingsGoal]("targetDate", "is not a valid date")
	}
	g.TargetDate = targetDate

	g.Name, _ = text(raw, "name")
	g.Name = strings.TrimSpace(g.Name)
	if g.Name == "" {
		r.Defaulted = append(r.Defaulted, "name")
		g.Name = DefaultCategoryName
	}

	var ok bool
	g.TargetAmount, ok = amount(raw, "targetAmount", "target_amount")
	if !ok {
		r.Defaulted = append(r.Defaulted, "targetAmount")
	}

	g.CurrentAmount, ok = amount(raw, "currentAmount", "current_amount")
	if !ok {
		r.Defaulted = append(r.Defaulted, "currentAmount")
	}

	g.IsCompleted, _ = boolean(raw, "isCompleted", "is_completed")
	g.UserID, _ = text(raw, "userId", "user_id")

	g.ID, _ = text(raw, "id")
	if strings.TrimSpace(g.ID) == "" {
		r.Defaulted = append(r.Defaulted, "id")
		g.ID = NewID()
	}

	return r
}
