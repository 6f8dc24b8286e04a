package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/warungku/warung/app/services"
	"github.com/warungku/warung/pkg/bind"
	"github.com/warungku/warung/pkg/middleware"
	"github.com/warungku/warung/pkg/response"
)

// ProductController handles the seller's catalog management.
type ProductController struct {
	products *services.ProductService
	uploads  *services.UploadService
}

func NewProductController() *ProductController {
	return &ProductController{
		products: services.NewProductService(),
		uploads:  services.NewUploadService(),
	}
}

func productID(r *http.Request) uint {
	id, _ := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	return uint(id)
}

func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	products, p, err := c.products.ListProducts(middleware.UserID(r.Context()), page, limit)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Paginated(w, products, toPagination(p))
}

func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var in services.ProductInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.products.AddProduct(r.Context(), middleware.UserID(r.Context()), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, product)
}

func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	var in services.ProductInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.products.UpdateProduct(middleware.UserID(r.Context()), productID(r), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, product)
}

func (c *ProductController) Restock(w http.ResponseWriter, r *http.Request) {
	var in services.RestockInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.products.Restock(middleware.UserID(r.Context()), productID(r), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, product)
}

func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.products.RemoveProduct(middleware.UserID(r.Context()), productID(r)); err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, map[string]string{"message": "product removed"})
}

// UploadImage accepts a multipart "image" field and returns the stored URL.
func (c *ProductController) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(services.MaxImageBytes); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "missing image file")
		return
	}
	defer file.Close()

	url, err := c.uploads.SaveProductImage(file, header)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnsupportedImage):
			response.Error(w, http.StatusUnsupportedMediaType, err.Error())
		case errors.Is(err, services.ErrImageTooLarge):
			response.Error(w, http.StatusRequestEntityTooLarge, err.Error())
		default:
			fail(w, r, err)
		}
		return
	}
	response.Created(w, map[string]string{"image_url": url})
}
