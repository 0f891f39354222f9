package menu

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"github.com/Eduardo-brito329/Menu-Web/internal/cache"
	"github.com/Eduardo-brito329/Menu-Web/internal/database"
	"github.com/Eduardo-brito329/Menu-Web/internal/models"
	"github.com/Eduardo-brito329/Menu-Web/internal/subscription"
)

// Categoria de fallback para produtos sem categoria definida
const FallbackCategory = "Outros"

// CategoryGroup é uma seção do cardápio público, na ordem de exibição
type CategoryGroup struct {
	Category string           `json:"category"`
	Products []models.Product `json:"products"`
}

// groupProducts ordena por categoria e nome e agrupa em seções.
// Produtos sem categoria caem em "Outros", sempre no fim do cardápio.
func groupProducts(products []models.Product) []CategoryGroup {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	sort.SliceStable(sorted, func(i, j int) bool {
		ci, cj := sorted[i].Category, sorted[j].Category
		// Sem categoria vai para o fim
		if (ci == "") != (cj == "") {
			return cj == ""
		}
		if ci != cj {
			return ci < cj
		}
		return sorted[i].Name < sorted[j].Name
	})

	var groups []CategoryGroup
	for _, p := range sorted {
		category := p.Category
		if category == "" {
			category = FallbackCategory
		}
		if len(groups) == 0 || groups[len(groups)-1].Category != category {
			groups = append(groups, CategoryGroup{Category: category})
		}
		groups[len(groups)-1].Products = append(groups[len(groups)-1].Products, p)
	}
	return groups
}

func fetchProducts(storeID gocql.UUID, onlyActive bool) ([]models.Product, error) {
	session, err := database.GetStoresSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT product_id, store_id, name, description, price, image_url, category, active, created_at, updated_at
		FROM products_by_store WHERE store_id = ?`, storeID).Iter()

	var products []models.Product
	var p models.Product
	for iter.Scan(&p.ID, &p.StoreID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.Category, &p.Active, &p.CreatedAt, &p.UpdatedAt) {
		if onlyActive && !p.Active {
			continue
		}
		products = append(products, p)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return products, nil
}

//
// 🟢 GET /api/public/menu/:storeId
//
// Cardápio público: loja + produtos ativos agrupados por categoria.
// Bloqueado quando a assinatura do dono expirou.
func GetMenu(c *gin.Context) {
	store, err := cache.GetStoreFromCache(c.Param("storeId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro carregando a loja"})
		return
	}
	if store == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cardápio não encontrado"})
		return
	}

	sub, err := cache.GetSubscriptionFromCache(store.OwnerID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro verificando assinatura"})
		return
	}
	if !subscription.IsAllowed(sub) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cardápio indisponível", "blocked": true})
		return
	}

	products, err := fetchProducts(store.ID, true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro carregando produtos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"store":      store,
		"is_open":    store.IsOpen,
		"categories": groupProducts(products),
	})
}

//
// 🟢 GET /api/public/stores/:storeId/status
//
// Checagem leve usada pelo cardápio antes de liberar o checkout:
// responde se a loja existe e se o acesso do dono está liberado.
func StoreStatus(c *gin.Context) {
	store, err := cache.GetStoreFromCache(c.Param("storeId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro carregando a loja"})
		return
	}
	if store == nil {
		c.JSON(http.StatusOK, gin.H{"allowed": false})
		return
	}

	sub, err := cache.GetSubscriptionFromCache(store.OwnerID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro verificando assinatura"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"allowed": subscription.IsAllowed(sub),
		"is_open": store.IsOpen,
	})
}
