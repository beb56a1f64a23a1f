package api

import (
	"net/http"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/httputil"
	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/HuyTapCode05/quanlythuchi/internal/normalize"
	"github.com/gin-gonic/gin"
)

var categories = resource[models.Category]{
	parse: func(raw map[string]any, _ time.Time) normalize.Result[models.Category] {
		return normalize.Category(raw)
	},
	owner: func(c models.Category) string {
		if c.UserID == nil {
			return ""
		}
		return *c.UserID
	},
	setOwner: func(c *models.Category, id string) {
		c.UserID = &id
	},
	updatable: map[string]string{
		"name":  "Name",
		"color": "Color",
		"icon":  "Icon",
		"type":  "Type",
	},
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsCategoryList)
		r.POST("", CreateCategory)
	}

	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.GET("/:id", GetCategories)
		r.PUT("/:id", UpdateCategory)
		r.DELETE("/:id", DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/api/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Param			id	path	string	true	"ID of the user for GET, ID of the category otherwise"
// @Router			/api/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	httputil.OptionsGetPutDelete(c)
}

// @Summary		List categories
// @Description	Returns the categories of the user and all global categories, newest first
// @Tags			Categories
// @Produce		json
// @Success		200	{array}		models.Category
// @Failure		403	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the user"
// @Router			/api/categories/{id} [get]
func GetCategories(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	visible, err := models.ListCategories(id)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, visible)
}

// @Summary		Create category
// @Description	Creates a category. Absent fields are filled with defaults, a category without user is global.
// @Tags			Categories
// @Produce		json
// @Success		200			{object}	models.Category
// @Failure		400			{object}	httpError
// @Failure		403			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			category	body		models.Category	true	"Category"
// @Router			/api/categories [post]
func CreateCategory(c *gin.Context) {
	category, ok := categories.create(c, nil)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, category)
}

// @Summary		Update category
// @Description	Updates the fields of the category that are set in the body
// @Tags			Categories
// @Produce		json
// @Success		200			{object}	SuccessResponse
// @Failure		400			{object}	httpError
// @Failure		403			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		string			true	"ID of the category"
// @Param			category	body		models.Category	true	"Category"
// @Router			/api/categories/{id} [put]
func UpdateCategory(c *gin.Context) {
	if _, ok := categories.update(c); !ok {
		return
	}

	success(c)
}

// @Summary		Delete category
// @Description	Deletes a category. Transactions keep their category ID.
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	SuccessResponse
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the category"
// @Router			/api/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	if _, ok := categories.delete(c); !ok {
		return
	}

	success(c)
}
