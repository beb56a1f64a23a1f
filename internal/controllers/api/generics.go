package api

import (
	"net/http"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/auth"
	"github.com/HuyTapCode05/quanlythuchi/internal/httputil"
	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/HuyTapCode05/quanlythuchi/internal/normalize"
	"github.com/gin-gonic/gin"
)

// resource describes how the generic handlers treat a model.
type resource[R models.Resource] struct {
	parse    func(raw map[string]any, now time.Time) normalize.Result[R]
	owner    func(R) string
	setOwner func(*R, string)

	// updatable maps the JSON keys accepted by updates to the model fields
	updatable map[string]string
}

// create binds the request, parses the resource and stores it. The
// owner defaults to the authenticated user. On failure, the error
// response has already been written.
func (res resource[R]) create(c *gin.Context, request any) (R, bool) {
	var value R

	raw, err := httputil.BindBody(c, request)
	if err != nil {
		return value, false
	}

	value, err = res.parse(raw, time.Now()).Get()
	if err != nil {
		abort(c, err)
		return value, false
	}

	owner := res.owner(value)
	if owner == "" {
		if id, ok := auth.UserID(c); ok {
			res.setOwner(&value, id)
		}
	} else if _, ok := authorized(c, owner); !ok {
		return value, false
	}

	err = models.Create(&value)
	if err != nil {
		abort(c, err)
		return value, false
	}

	return value, true
}

// update overwrites the fields present in the request body. The returned
// value carries the ID of the resource.
func (res resource[R]) update(c *gin.Context) (R, bool) {
	var value R

	id, ok := res.ownedID(c)
	if !ok {
		return value, false
	}

	raw, err := httputil.BindBody(c, nil)
	if err != nil {
		return value, false
	}

	fields := presentFields(raw, res.updatable)
	if len(fields) == 0 {
		abort(c, errNothingToSave)
		return value, false
	}

	value, err = res.parse(raw, time.Now()).Get()
	if err != nil {
		abort(c, err)
		return value, false
	}

	err = models.Update(id, value, fields...)
	if err != nil {
		abort(c, err)
		return value, false
	}

	return withID(value, id), true
}

// delete removes the resource with the ID in the path and returns the ID.
func (res resource[R]) delete(c *gin.Context) (string, bool) {
	id, ok := res.ownedID(c)
	if !ok {
		return "", false
	}

	err := models.Delete[R](id)
	if err != nil {
		abort(c, err)
		return "", false
	}

	return id, true
}

// ownedID reads the resource ID from the path. For authenticated
// requests, the resource must belong to the user or be global.
func (res resource[R]) ownedID(c *gin.Context) (string, bool) {
	id, ok := resourceID(c)
	if !ok {
		return "", false
	}

	if _, authenticated := auth.UserID(c); !authenticated {
		return id, true
	}

	var existing R
	err := models.DB.Where("id = ?", id).First(&existing).Error
	if err != nil {
		abort(c, err)
		return "", false
	}

	if owner := res.owner(existing); owner != "" {
		if _, ok := authorized(c, owner); !ok {
			return "", false
		}
	}

	return id, true
}

// list responds with all resources of the user in the path.
func list[R models.Transaction | models.Budget | models.RecurringRule | models.SavingsGoal](c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	resources, err := models.List[R](id)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resources)
}

// withID sets the ID of the resource.
func withID[R models.Resource](value R, id string) R {
	switch v := any(&value).(type) {
	case *models.Category:
		v.ID = id
	case *models.Transaction:
		v.ID = id
	case *models.Budget:
		v.ID = id
	case *models.RecurringRule:
		v.ID = id
	case *models.SavingsGoal:
		v.ID = id
	}

	return value
}
