package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"bistro/app/models"
	"bistro/app/services"
	"bistro/pkg/bind"
	"bistro/pkg/response"
)

type MenuController struct {
	service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{service: service}
}

type menuItemRequest struct {
	Name     string  `json:"name" validate:"required,max=120"`
	Recipe   string  `json:"recipe" validate:"nullable,max=2000"`
	Image    string  `json:"image" validate:"nullable,max=500"`
	Category string  `json:"category" validate:"required,in=salad,pizza,soup,dessert,drinks,offered"`
	Price    float64 `json:"price" validate:"required,numeric,gt=0"`
}

func (b menuItemRequest) model() models.MenuItem {
	return models.MenuItem{
		Name:     b.Name,
		Recipe:   b.Recipe,
		Image:    b.Image,
		Category: b.Category,
		Price:    b.Price,
	}
}

// Index returns the full public menu.
func (c *MenuController) Index(w http.ResponseWriter, r *http.Request) {
	items, err := c.service.List(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, items)
}

// Show returns one menu item by id.
func (c *MenuController) Show(w http.ResponseWriter, r *http.Request) {
	item, err := c.service.Find(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, item)
}

// Store creates a menu item. Admin only.
func (c *MenuController) Store(w http.ResponseWriter, r *http.Request) {
	var body menuItemRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	id, err := c.service.Create(r.Context(), body.model())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, map[string]string{"insertedId": id})
}

// Update replaces the editable fields of one menu item. Admin only.
func (c *MenuController) Update(w http.ResponseWriter, r *http.Request) {
	var body menuItemRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	modified, err := c.service.Update(r.Context(), chi.URLParam(r, "id"), body.model())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, map[string]int64{"modifiedCount": modified})
}

// Destroy removes one menu item. Admin only.
func (c *MenuController) Destroy(w http.ResponseWriter, r *http.Request) {
	deleted, err := c.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, map[string]int64{"deletedCount": deleted})
}

// maxImageBytes caps multipart uploads for menu images (8 MB).
const maxImageBytes = 8 << 20

// UploadImage accepts a multipart "image" file, stores it on the
// configured disk, and returns the public URL. Admin only.
func (c *MenuController) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "missing image file")
		return
	}
	defer file.Close()

	url, err := c.service.UploadImage(header.Filename, file)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, map[string]string{"url": url})
}
