package handlers

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"motoparts-api/internal/cache"
	"motoparts-api/internal/models"
	"motoparts-api/internal/repository"
)

// Todas las claves del catálogo comparten productsPrefix
const (
	productsPrefix   = "products:"
	productListKey   = productsPrefix + "list"
	productKeyPrefix = productsPrefix + "item:"

	// maxAdjustment acota la cantidad de un ajuste de stock
	maxAdjustment = 1_000_000
)

type ProductHandler struct {
	repo  ProductStore
	cache *cache.Cache
}

func NewProductHandler(repo ProductStore, c *cache.Cache) *ProductHandler {
	return &ProductHandler{
		repo:  repo,
		cache: c,
	}
}

// ListProducts GET /products (con caché)
func (h *ProductHandler) ListProducts(c *gin.Context) {
	if cached, found := h.cache.GetValue(productListKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	gen := h.cache.Generation()
	products, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching products")
		return
	}

	h.cache.SetIfGeneration(productListKey, products, gen)
	c.JSON(http.StatusOK, products)
}

// GetProduct GET /make_order/:id (con caché)
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")
	if _, err := repository.ParseID(id); err != nil {
		badRequest(c, "Invalid product ID")
		return
	}

	cacheKey := productKeyPrefix + id
	if cached, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	// si un ajuste invalida el caché mientras leemos, el valor leído no se guarda
	gen := h.cache.Generation()
	product, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Error fetching product")
		return
	}

	h.cache.SetIfGeneration(cacheKey, *product, gen)
	c.JSON(http.StatusOK, product)
}

// CreateProduct POST /products; los seis campos son obligatorios
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "All fields are required")
		return
	}

	product := input.ToProduct()
	if err := h.repo.Create(c.Request.Context(), product); err != nil {
		respondError(c, err, "Internal Server Error")
		return
	}

	h.cache.Delete(productListKey)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": product,
	})
}

// AdjustStock PATCH /products/:id con {quantity, action}. Todo se valida
// antes de tocar la base; el incremento es atómico en el repositorio.
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	id := c.Param("id")
	if _, err := repository.ParseID(id); err != nil {
		badRequest(c, "Invalid product ID")
		return
	}

	var req models.StockAdjustment
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	if req.Action != models.StockAdd && req.Action != models.StockDeduct {
		badRequest(c, "Invalid action. Use 'add' or 'deduct'.")
		return
	}

	quantity, ok := wholePositive(req.Quantity)
	if !ok {
		badRequest(c, "Quantity must be a positive number.")
		return
	}

	available, err := h.repo.AdjustStock(c.Request.Context(), id, quantity, req.Action)
	if errors.Is(err, repository.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Product not found."})
		return
	}
	if err != nil {
		respondError(c, err, "Internal server error.")
		return
	}

	h.invalidate()

	c.JSON(http.StatusOK, gin.H{
		"message":            "Product quantity updated successfully.",
		"productId":          id,
		"available_quantity": available,
	})
}

// DeleteProduct DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	if _, err := repository.ParseID(id); err != nil {
		badRequest(c, "Invalid product ID")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Server error")
		return
	}

	h.invalidate()

	c.JSON(http.StatusOK, SuccessResponse{Message: "Product deleted successfully"})
}

// invalidate descarta el listado y todas las fichas cacheadas
func (h *ProductHandler) invalidate() {
	h.cache.DeleteByPrefix(productsPrefix)
}

// wholePositive acepta solo números JSON enteros y positivos; un string o
// un null no cuentan como cantidad.
func wholePositive(q interface{}) (int64, bool) {
	v, ok := q.(float64)
	if !ok {
		return 0, false
	}
	if v <= 0 || v > maxAdjustment || v != math.Trunc(v) {
		return 0, false
	}
	return int64(v), true
}
