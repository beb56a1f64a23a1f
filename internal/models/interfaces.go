package models

import "encoding/json"

// Model is an interface that all exportable resources implement.
type Model interface {
	Export() (json.RawMessage, error) // All instances of this model for export.
}

// The "Registry" is a slice of all models available
//
// It is maintained so that operations that affect all models do not need to explicitly iterate over every single model,
// increasing the risk of forgetting something when adding a new model
var Registry = []Model{
	Category{},
	Transaction{},
	Budget{},
	RecurringRule{},
	SavingsGoal{},
}

// export marshals all instances of a resource.
func export[R Resource]() (json.RawMessage, error) {
	var resources []R
	err := DB.Order("created_at ASC").Find(&resources).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&resources)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
