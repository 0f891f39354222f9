package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"github.com/Eduardo-brito329/Menu-Web/internal/database"
	"github.com/Eduardo-brito329/Menu-Web/internal/models"
)

const (
	StoreCacheTTL        = 60 * time.Second
	SubscriptionCacheTTL = 60 * time.Second
)

// GetStoreFromCache busca a loja no Redis e cai para o ScyllaDB.
// Devolve (nil, nil) quando a loja não existe — estado terminal do cardápio.
func GetStoreFromCache(storeID string) (*models.Store, error) {
	ctx := context.Background()
	key := "store:" + storeID

	// 1. Tentar o cache Redis
	data, err := database.Redis.Get(ctx, key).Result()
	if err == nil {
		var store models.Store
		if json.Unmarshal([]byte(data), &store) == nil {
			return &store, nil
		}
	}

	// 2. Buscar no ScyllaDB
	session, err := database.GetStoresSession()
	if err != nil {
		return nil, err
	}

	sid, err := uuid.Parse(storeID)
	if err != nil {
		return nil, nil // id malformado nunca corresponde a uma loja
	}

	var store models.Store
	err = session.Query(`SELECT store_id, owner_id, name, description, logo_url, banner_url, whatsapp, is_open, created_at, updated_at
		FROM stores WHERE store_id = ?`, gocql.UUID(sid)).Scan(
		&store.ID, &store.OwnerID, &store.Name, &store.Description,
		&store.LogoURL, &store.BannerURL, &store.Whatsapp, &store.IsOpen,
		&store.CreatedAt, &store.UpdatedAt)
	if errors.Is(err, gocql.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	// 3. Guardar no cache
	jsonData, _ := json.Marshal(store)
	database.Redis.Set(ctx, key, jsonData, StoreCacheTTL)

	return &store, nil
}

// InvalidateStoreCache invalida o cache de uma loja (usado pelo settings)
func InvalidateStoreCache(storeID string) {
	ctx := context.Background()
	database.Redis.Del(ctx, "store:"+storeID)
}

// GetSubscriptionFromCache busca a janela de assinatura de um usuário.
// Sem registro na tabela, devolve a janela zerada — o avaliador de acesso
// trata isso como "ainda não provisionado" e libera.
func GetSubscriptionFromCache(userID string) (models.Subscription, error) {
	ctx := context.Background()
	key := "subscription:" + userID

	data, err := database.Redis.Get(ctx, key).Result()
	if err == nil {
		var sub models.Subscription
		if json.Unmarshal([]byte(data), &sub) == nil {
			return sub, nil
		}
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return models.Subscription{}, err
	}

	sub := models.Subscription{UserID: userID}
	err = database.QuerySubscriptionByUser(gocql.UUID(uid)).Scan(
		&sub.TrialStart, &sub.TrialEnd, &sub.IsPaid, &sub.PaidUntil)
	if err != nil && !errors.Is(err, gocql.ErrNotFound) {
		return models.Subscription{}, err
	}

	jsonData, _ := json.Marshal(sub)
	database.Redis.Set(ctx, key, jsonData, SubscriptionCacheTTL)

	return sub, nil
}

// InvalidateSubscriptionCache invalida a janela cacheada (webhook de cobrança)
func InvalidateSubscriptionCache(userID string) {
	ctx := context.Background()
	database.Redis.Del(ctx, "subscription:"+userID)
}
