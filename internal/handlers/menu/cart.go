package menu

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Eduardo-brito329/Menu-Web/internal/cache"
	"github.com/Eduardo-brito329/Menu-Web/internal/cart"
	"github.com/Eduardo-brito329/Menu-Web/internal/database"
	"github.com/Eduardo-brito329/Menu-Web/internal/models"
)

// Carrinhos de visitante vivem só no Redis, por sessão e por loja
const CartTTL = 6 * time.Hour

// cartSession identifica o visitante: header, cookie, ou uma sessão
// nova gravada em cookie na primeira escrita.
func cartSession(c *gin.Context) string {
	if sid := c.GetHeader("X-Cart-Session"); sid != "" {
		return sid
	}
	if sid, err := c.Cookie("cart_session"); err == nil && sid != "" {
		return sid
	}
	sid := uuid.NewString()
	c.SetCookie("cart_session", sid, int(CartTTL.Seconds()), "/", "", false, true)
	return sid
}

func cartKey(storeID, sessionID string) string {
	return "cart:" + storeID + ":" + sessionID
}

// decodeCart interpreta o resultado do GET: chave ausente é carrinho
// vazio, JSON corrompido reseta o carrinho, erro de conexão sobe para
// o handler — indisponibilidade do Redis não pode virar "carrinho vazio".
func decodeCart(data string, err error) ([]models.CartItem, error) {
	if errors.Is(err, redis.Nil) {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	var items []models.CartItem
	if json.Unmarshal([]byte(data), &items) != nil {
		return []models.CartItem{}, nil
	}
	return items, nil
}

func loadCart(ctx context.Context, key string) ([]models.CartItem, error) {
	return decodeCart(database.Redis.Get(ctx, key).Result())
}

func saveCart(ctx context.Context, key string, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return database.Redis.Set(ctx, key, data, CartTTL).Err()
}

func respondCart(c *gin.Context, sessionID string, items []models.CartItem) {
	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"items":      items,
		"total":      cart.Total(items),
		"item_count": cart.ItemCount(items),
	})
}

//
// 🟢 GET /api/public/menu/:storeId/cart
//
func GetCart(c *gin.Context) {
	ctx := context.Background()
	sessionID := cartSession(c)

	items, err := loadCart(ctx, cartKey(c.Param("storeId"), sessionID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro carregando o carrinho"})
		return
	}
	respondCart(c, sessionID, items)
}

//
// 🟢 POST /api/public/menu/:storeId/cart/items
//
// Adiciona uma unidade do produto. O snapshot de nome e preço é tirado
// na hora da adição; edições posteriores do produto não mexem no carrinho.
func AddToCart(c *gin.Context) {
	var input struct {
		ProductID string `json:"product_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Produto inválido"})
		return
	}

	storeID := c.Param("storeId")
	store, err := cache.GetStoreFromCache(storeID)
	if err != nil || store == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Loja não encontrada"})
		return
	}

	productID, err := gocql.ParseUUID(input.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Produto inválido"})
		return
	}

	session, err := database.GetStoresSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro de conexão com o banco"})
		return
	}

	var p models.Product
	if err := session.Query(`SELECT product_id, name, price, image_url, active
		FROM products_by_store WHERE store_id = ? AND product_id = ?`,
		store.ID, productID).Scan(&p.ID, &p.Name, &p.Price, &p.ImageURL, &p.Active); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
		return
	}
	if !p.Active {
		c.JSON(http.StatusConflict, gin.H{"error": "Produto indisponível"})
		return
	}

	ctx := context.Background()
	sessionID := cartSession(c)
	key := cartKey(storeID, sessionID)

	items, err := loadCart(ctx, key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro carregando o carrinho"})
		return
	}

	items = cart.Add(items, models.CartItem{
		ProductID: p.ID.String(),
		Name:      p.Name,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
	})

	if err := saveCart(ctx, key, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro salvando o carrinho"})
		return
	}
	respondCart(c, sessionID, items)
}

//
// 🟢 PUT /api/public/menu/:storeId/cart/items/:productId
//
// Quantidade zero ou negativa remove o item.
func UpdateCartItem(c *gin.Context) {
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantidade inválida"})
		return
	}

	ctx := context.Background()
	sessionID := cartSession(c)
	key := cartKey(c.Param("storeId"), sessionID)

	items, err := loadCart(ctx, key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro carregando o carrinho"})
		return
	}

	items = cart.UpdateQuantity(items, c.Param("productId"), input.Quantity)

	if err := saveCart(ctx, key, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro salvando o carrinho"})
		return
	}
	respondCart(c, sessionID, items)
}

//
// 🟢 DELETE /api/public/menu/:storeId/cart/items/:productId
//
func RemoveFromCart(c *gin.Context) {
	ctx := context.Background()
	sessionID := cartSession(c)
	key := cartKey(c.Param("storeId"), sessionID)

	items, err := loadCart(ctx, key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro carregando o carrinho"})
		return
	}

	items = cart.Remove(items, c.Param("productId"))

	if err := saveCart(ctx, key, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro salvando o carrinho"})
		return
	}
	respondCart(c, sessionID, items)
}

//
// 🟢 DELETE /api/public/menu/:storeId/cart
//
func ClearCart(c *gin.Context) {
	ctx := context.Background()
	sessionID := cartSession(c)

	database.Redis.Del(ctx, cartKey(c.Param("storeId"), sessionID))
	respondCart(c, sessionID, []models.CartItem{})
}
