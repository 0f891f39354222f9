package database

import (
	"log"
	"sync"

	"github.com/gocql/gocql"
)

// Sessões fixadas na inicialização para os caminhos quentes (login, gate de
// acesso, resolução de loja do dono). O gocql cacheia o prepare por
// statement, então cada helper devolve uma query nova já vinculada —
// queries do gocql não podem ser compartilhadas entre goroutines.
var (
	usersStmtSession  *gocql.Session
	storesStmtSession *gocql.Session

	preparedOnce sync.Once
)

// InitPreparedStatements fixa as sessões usadas pelos helpers abaixo
func InitPreparedStatements() {
	preparedOnce.Do(func() {
		var err error

		usersStmtSession, err = GetUsersSession()
		if err != nil {
			log.Printf("⚠️ Não foi possível preparar as queries de usuários: %v", err)
			return
		}

		storesStmtSession, err = GetStoresSession()
		if err != nil {
			log.Printf("⚠️ Não foi possível preparar as queries de lojas: %v", err)
			return
		}

		log.Println("✅ Prepared statements inicializados")
	})
}

// QueryUserIDByEmail: lookup de login (tabela invertida users_by_email)
func QueryUserIDByEmail(email string) *gocql.Query {
	return usersStmtSession.Query("SELECT user_id FROM users_by_email WHERE email = ?", email)
}

// QueryUserByID: dados básicos do usuário autenticado
func QueryUserByID(userID gocql.UUID) *gocql.Query {
	return usersStmtSession.Query("SELECT email, password, name FROM users WHERE user_id = ?", userID)
}

// QuerySubscriptionByUser: janela de assinatura para o gate de acesso
func QuerySubscriptionByUser(userID gocql.UUID) *gocql.Query {
	return usersStmtSession.Query(`SELECT trial_start, trial_end, is_paid, paid_until
		FROM subscriptions WHERE user_id = ?`, userID)
}

// QueryStoreIDByOwner: resolve a loja do dono logado
func QueryStoreIDByOwner(ownerID gocql.UUID) *gocql.Query {
	return storesStmtSession.Query("SELECT store_id FROM stores_by_owner WHERE owner_id = ?", ownerID)
}
