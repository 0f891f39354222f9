package admin

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Eduardo-brito329/Menu-Web/internal/cache"
	"github.com/Eduardo-brito329/Menu-Web/internal/database"
	"github.com/Eduardo-brito329/Menu-Web/internal/models"
	"github.com/Eduardo-brito329/Menu-Web/internal/phone"
	"github.com/Eduardo-brito329/Menu-Web/internal/services"
	"github.com/Eduardo-brito329/Menu-Web/internal/utils"
)

//
// 🟢 GET /api/admin/store
//
func GetMyStore(c *gin.Context) {
	storeID, ok := resolveStoreID(c)
	if !ok {
		return
	}

	store, err := cache.GetStoreFromCache(storeID.String())
	if err != nil || store == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Loja não encontrada"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"store":    store,
		"menu_url": utils.MenuURL(storeID.String()),
	})
}

//
// 🟢 PUT /api/admin/store
//
// O número de WhatsApp é normalizado no save: só dígitos, com o DDI 55
// na frente. É esse valor que entra no link wa.me do checkout.
func UpdateStore(c *gin.Context) {
	storeID, ok := resolveStoreID(c)
	if !ok {
		return
	}

	var input struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		LogoURL     string `json:"logo_url"`
		BannerURL   string `json:"banner_url"`
		Whatsapp    string `json:"whatsapp"`
		IsOpen      *bool  `json:"is_open"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	name := strings.TrimSpace(input.Name)
	if n := len([]rune(name)); n < 2 || n > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nome deve ter entre 2 e 100 caracteres"})
		return
	}

	whatsapp := phone.Normalize(input.Whatsapp)

	isOpen := true
	if input.IsOpen != nil {
		isOpen = *input.IsOpen
	}

	session, err := database.GetStoresSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro de conexão com o banco"})
		return
	}

	now := time.Now()
	if err := session.Query(`UPDATE stores SET name = ?, description = ?, logo_url = ?, banner_url = ?, whatsapp = ?, is_open = ?, updated_at = ?
		WHERE store_id = ?`,
		name, strings.TrimSpace(input.Description), input.LogoURL, input.BannerURL,
		whatsapp, isOpen, now, storeID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro salvando a loja"})
		return
	}

	cache.InvalidateStoreCache(storeID.String())

	store, err := cache.GetStoreFromCache(storeID.String())
	if err != nil || store == nil {
		// Gravou mas não releu; devolve o que foi salvo
		c.JSON(http.StatusOK, gin.H{"store": models.Store{
			ID: storeID, Name: name, Description: input.Description,
			LogoURL: input.LogoURL, BannerURL: input.BannerURL,
			Whatsapp: whatsapp, IsOpen: isOpen, UpdatedAt: now,
		}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"store": store})
}

//
// 🟢 PUT /api/admin/store/status
//
// Toggle rápido aberto/fechado usado pelo painel.
func UpdateStoreStatus(c *gin.Context) {
	storeID, ok := resolveStoreID(c)
	if !ok {
		return
	}

	var input struct {
		IsOpen bool `json:"is_open"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	session, err := database.GetStoresSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro de conexão com o banco"})
		return
	}

	if err := session.Query(`UPDATE stores SET is_open = ?, updated_at = ? WHERE store_id = ?`,
		input.IsOpen, time.Now(), storeID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro salvando a loja"})
		return
	}

	cache.InvalidateStoreCache(storeID.String())

	c.JSON(http.StatusOK, gin.H{"is_open": input.IsOpen})
}

//
// 🟢 POST /api/admin/store/logo  |  POST /api/admin/store/banner
//
func UploadStoreLogo(c *gin.Context)   { uploadStoreImage(c, "logos") }
func UploadStoreBanner(c *gin.Context) { uploadStoreImage(c, "banners") }

func uploadStoreImage(c *gin.Context, folder string) {
	if _, ok := resolveStoreID(c); !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Imagem não enviada"})
		return
	}

	url, err := services.UploadImage(folder, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro no upload da imagem"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

//
// 🟢 GET /api/admin/store/qrcode?size=
//
// PNG do QR que aponta para o cardápio público da loja.
func MenuQRCode(c *gin.Context) {
	storeID, ok := resolveStoreID(c)
	if !ok {
		return
	}

	size := 0
	if s := c.Query("size"); s != "" {
		size, _ = strconv.Atoi(s)
	}

	png, err := utils.GenerateMenuQR(storeID.String(), size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro gerando QR code"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="cardapio-qrcode.png"`)
	c.Data(http.StatusOK, "image/png", png)
}
