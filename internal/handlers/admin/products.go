package admin

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"github.com/Eduardo-brito329/Menu-Web/internal/database"
	"github.com/Eduardo-brito329/Menu-Web/internal/models"
	"github.com/Eduardo-brito329/Menu-Web/internal/services"
)

// resolveStoreID acha a loja do usuário logado via tabela invertida
func resolveStoreID(c *gin.Context) (gocql.UUID, bool) {
	userID, err := gocql.ParseUUID(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
		return gocql.UUID{}, false
	}

	var storeID gocql.UUID
	if err := database.QueryStoreIDByOwner(userID).Scan(&storeID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Loja não encontrada"})
		return gocql.UUID{}, false
	}
	return storeID, true
}

type productInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"`
	Active      *bool   `json:"active"`
}

func validateProduct(in productInput) (string, bool) {
	name := strings.TrimSpace(in.Name)
	if n := len([]rune(name)); n < 2 || n > 100 {
		return "Nome deve ter entre 2 e 100 caracteres", false
	}
	if in.Price < 0 {
		return "Preço não pode ser negativo", false
	}
	return "", true
}

//
// 🟢 GET /api/admin/products
//
// Lista completa, inclusive produtos inativos.
func ListProducts(c *gin.Context) {
	storeID, ok := resolveStoreID(c)
	if !ok {
		return
	}

	session, err := database.GetStoresSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro de conexão com o banco"})
		return
	}

	iter := session.Query(`SELECT product_id, store_id, name, description, price, image_url, category, active, created_at, updated_at
		FROM products_by_store WHERE store_id = ?`, storeID).Iter()

	products := []models.Product{}
	var p models.Product
	for iter.Scan(&p.ID, &p.StoreID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.Category, &p.Active, &p.CreatedAt, &p.UpdatedAt) {
		products = append(products, p)
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro carregando produtos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

//
// 🟢 POST /api/admin/products
//
func CreateProduct(c *gin.Context) {
	storeID, ok := resolveStoreID(c)
	if !ok {
		return
	}

	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}
	if msg, ok := validateProduct(input); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	session, err := database.GetStoresSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro de conexão com o banco"})
		return
	}

	now := time.Now()
	active := true
	if input.Active != nil {
		active = *input.Active
	}

	product := models.Product{
		ID:          gocql.TimeUUID(),
		StoreID:     storeID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Category:    strings.TrimSpace(input.Category),
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := session.Query(`INSERT INTO products (product_id, store_id, name, description, price, image_url, category, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		product.ID, product.StoreID, product.Name, product.Description, product.Price,
		product.ImageURL, product.Category, product.Active, now, now).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro criando produto"})
		return
	}

	if err := session.Query(`INSERT INTO products_by_store (store_id, product_id, name, description, price, image_url, category, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		product.StoreID, product.ID, product.Name, product.Description, product.Price,
		product.ImageURL, product.Category, product.Active, now, now).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro criando produto"})
		return
	}

	go services.IndexProduct(product)

	c.JSON(http.StatusCreated, gin.H{"product": product})
}

//
// 🟢 PUT /api/admin/products/:productId
//
func UpdateProduct(c *gin.Context) {
	storeID, ok := resolveStoreID(c)
	if !ok {
		return
	}

	productID, err := gocql.ParseUUID(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Produto inválido"})
		return
	}

	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}
	if msg, ok := validateProduct(input); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	session, err := database.GetStoresSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro de conexão com o banco"})
		return
	}

	// O produto precisa pertencer à loja do usuário
	var existing models.Product
	if err := session.Query(`SELECT product_id, created_at FROM products_by_store WHERE store_id = ? AND product_id = ?`,
		storeID, productID).Scan(&existing.ID, &existing.CreatedAt); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
		return
	}

	now := time.Now()
	active := true
	if input.Active != nil {
		active = *input.Active
	}

	product := models.Product{
		ID:          productID,
		StoreID:     storeID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Category:    strings.TrimSpace(input.Category),
		Active:      active,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   now,
	}

	if err := session.Query(`UPDATE products SET name = ?, description = ?, price = ?, image_url = ?, category = ?, active = ?, updated_at = ?
		WHERE product_id = ?`,
		product.Name, product.Description, product.Price, product.ImageURL,
		product.Category, product.Active, now, productID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro atualizando produto"})
		return
	}

	if err := session.Query(`UPDATE products_by_store SET name = ?, description = ?, price = ?, image_url = ?, category = ?, active = ?, updated_at = ?
		WHERE store_id = ? AND product_id = ?`,
		product.Name, product.Description, product.Price, product.ImageURL,
		product.Category, product.Active, now, storeID, productID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro atualizando produto"})
		return
	}

	go services.IndexProduct(product)

	c.JSON(http.StatusOK, gin.H{"product": product})
}

//
// 🟢 DELETE /api/admin/products/:productId
//
func DeleteProduct(c *gin.Context) {
	storeID, ok := resolveStoreID(c)
	if !ok {
		return
	}

	productID, err := gocql.ParseUUID(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Produto inválido"})
		return
	}

	session, err := database.GetStoresSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro de conexão com o banco"})
		return
	}

	var existingID gocql.UUID
	if err := session.Query(`SELECT product_id FROM products_by_store WHERE store_id = ? AND product_id = ?`,
		storeID, productID).Scan(&existingID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
		return
	}

	if err := session.Query(`DELETE FROM products WHERE product_id = ?`, productID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro removendo produto"})
		return
	}
	if err := session.Query(`DELETE FROM products_by_store WHERE store_id = ? AND product_id = ?`,
		storeID, productID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro removendo produto"})
		return
	}

	go services.RemoveProductFromIndex(productID.String())

	c.JSON(http.StatusOK, gin.H{"msg": "Produto removido"})
}

//
// 🟢 POST /api/admin/products/upload
//
// O upload vem ANTES do save do produto: se falhar aqui, o formulário
// aborta e nada é gravado no catálogo.
func UploadProductImage(c *gin.Context) {
	if _, ok := resolveStoreID(c); !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Imagem não enviada"})
		return
	}

	url, err := services.UploadImage("products", file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro no upload da imagem"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

//
// 🟢 GET /api/admin/products/search?q=
//
func SearchProducts(c *gin.Context) {
	storeID, ok := resolveStoreID(c)
	if !ok {
		return
	}

	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Informe o termo de busca"})
		return
	}

	results, err := services.SearchProducts(storeID.String(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na busca"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}
