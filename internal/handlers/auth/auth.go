package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"github.com/Eduardo-brito329/Menu-Web/internal/database"
	"github.com/Eduardo-brito329/Menu-Web/internal/models"
	"github.com/Eduardo-brito329/Menu-Web/internal/utils"
)

// Dias de teste grátis criados no cadastro
const TrialDays = 15

//
// 🟢 POST /api/auth/signup
//
// Cria usuário + loja + assinatura trial numa tacada só: a loja nasce
// junto com a conta e a janela de trial começa a contar na hora.
func Signup(c *gin.Context) {
	var input struct {
		Name      string `json:"name"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		StoreName string `json:"store_name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.StoreName = strings.TrimSpace(input.StoreName)

	if !strings.Contains(input.Email, "@") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email inválido"})
		return
	}
	if len(input.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Senha deve ter pelo menos 6 caracteres"})
		return
	}
	if len([]rune(input.StoreName)) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nome da loja deve ter pelo menos 2 caracteres"})
		return
	}

	// Email já cadastrado?
	var existingID gocql.UUID
	err := database.QueryUserIDByEmail(input.Email).Scan(&existingID)
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Já existe uma conta com esse email"})
		return
	}
	if !errors.Is(err, gocql.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro consultando usuários"})
		return
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao processar a senha"})
		return
	}

	usersSession, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro de conexão com o banco"})
		return
	}
	storesSession, err := database.GetStoresSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro de conexão com o banco"})
		return
	}

	now := time.Now()
	userID := gocql.TimeUUID()
	storeID := gocql.TimeUUID()

	if err := usersSession.Query(`INSERT INTO users (user_id, email, password, name, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		userID, input.Email, hashedPassword, input.Name, now).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro criando usuário"})
		return
	}

	if err := usersSession.Query(`INSERT INTO users_by_email (email, user_id) VALUES (?, ?)`,
		input.Email, userID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro criando usuário"})
		return
	}

	// Assinatura trial: 15 dias grátis
	trialEnd := now.Add(TrialDays * 24 * time.Hour)
	if err := usersSession.Query(`INSERT INTO subscriptions (user_id, trial_start, trial_end, is_paid, paid_until, updated_at)
		VALUES (?, ?, ?, false, null, ?)`,
		userID, now, trialEnd, now).Exec(); err != nil {
		log.Println("⚠️ Erro criando assinatura trial:", err)
		// Não bloqueia o cadastro: sem registro o avaliador libera o acesso
	}

	if err := storesSession.Query(`INSERT INTO stores (store_id, owner_id, name, description, logo_url, banner_url, whatsapp, is_open, created_at, updated_at)
		VALUES (?, ?, ?, '', '', '', '', true, ?, ?)`,
		storeID, userID, input.StoreName, now, now).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro criando loja"})
		return
	}

	if err := storesSession.Query(`INSERT INTO stores_by_owner (owner_id, store_id) VALUES (?, ?)`,
		userID, storeID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro criando loja"})
		return
	}

	user := models.User{ID: userID.String(), Name: input.Name, Email: input.Email}
	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro gerando token"})
		return
	}

	log.Printf("✅ Conta criada: %s (loja %s)", input.Email, storeID)

	c.JSON(http.StatusCreated, gin.H{
		"token":    token,
		"user":     user,
		"store_id": storeID.String(),
	})
}

//
// 🟢 POST /api/auth/login
//
func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	var userID gocql.UUID
	err := database.QueryUserIDByEmail(input.Email).Scan(&userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou senha incorretos"})
		return
	}

	var email, password, name string
	if err := database.QueryUserByID(userID).Scan(&email, &password, &name); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou senha incorretos"})
		return
	}

	ok, err := utils.VerifyPassword(input.Password, password)
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou senha incorretos"})
		return
	}

	user := models.User{ID: userID.String(), Name: name, Email: email}
	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro gerando token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

//
// 🟢 GET /api/auth/me
//
func Me(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Não autenticado"})
		return
	}

	uid, err := gocql.ParseUUID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
		return
	}

	var email, password, name string
	if err := database.QueryUserByID(uid).Scan(&email, &password, &name); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
		return
	}

	var storeID gocql.UUID
	storeIDStr := ""
	if err := database.QueryStoreIDByOwner(uid).Scan(&storeID); err == nil {
		storeIDStr = storeID.String()
	}

	c.JSON(http.StatusOK, gin.H{
		"user":     models.User{ID: userID, Name: name, Email: email},
		"store_id": storeIDStr,
	})
}
