package database

import (
	"context"
	"crypto/x509"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gocql/gocql"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
)

// --- Configuração ScyllaDB ---
type ScyllaKeyspaceConfig struct {
	Hosts       []string
	Keyspace    string
	Username    string
	Password    string
	SSLEnabled  bool
	CACertPath  string
	Timeout     time.Duration
	NumConns    int
	Consistency gocql.Consistency
}

type ScyllaManager struct {
	sessions map[string]*gocql.Session // keyspace → session
	configs  map[string]ScyllaKeyspaceConfig
	mu       sync.Mutex
}

// --- Variáveis globais ---
var (
	Scylla      *ScyllaManager
	Redis       *redis.Client
	RedisClient *redis.Client // Alias para compatibilidade
	Elastic     *elasticsearch.Client
	MinIO       *minio.Client
)

// --- Inicialização ---
func ConnectDatabases() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 1. Inicializar ScyllaDB (multi-keyspaces)
	if err := InitScyllaDB(); err != nil {
		log.Fatalf("❌ Falha na inicialização do ScyllaDB: %v", err)
	}

	// 2. Inicializar Redis
	connectRedis(ctx)

	// 3. Inicializar Elasticsearch
	connectElastic()

	// 4. Inicializar MinIO
	connectMinIO(ctx)

	log.Println("✅ Todos os bancos de dados conectados")
}

// =============================================
// SCYLLA DB (Multi-Keyspaces com SSL & Roles)
// =============================================

// InitScyllaDB inicializa o gerenciador de sessões ScyllaDB
func InitScyllaDB() error {
	Scylla = &ScyllaManager{
		sessions: make(map[string]*gocql.Session),
		configs:  loadScyllaConfigs(),
	}

	// Criar as sessões para cada keyspace configurado
	for keyspace := range Scylla.configs {
		if _, err := Scylla.GetSession(keyspace); err != nil {
			return fmt.Errorf("falha inicializando keyspace %s: %v", keyspace, err)
		}
	}

	// Nota: as tabelas são criadas manualmente via scripts/scylladb_init.cql
	// A inicialização automática fica desativada para evitar problemas de permissão

	return nil
}

// loadScyllaConfigs carrega as configurações do .env
func loadScyllaConfigs() map[string]ScyllaKeyspaceConfig {
	configs := make(map[string]ScyllaKeyspaceConfig)

	// Configuração comum
	hosts := strings.Split(os.Getenv("SCYLLA_HOSTS"), ",")
	sslEnabled := strings.ToLower(os.Getenv("SCYLLA_SSL_ENABLED")) == "true"
	caPath := os.Getenv("SCYLLA_SSL_CA_PATH")
	timeout := 5 * time.Second
	numConns := 10
	consistency := gocql.Quorum

	// --- Keyspace Usuários (users, users_by_email, subscriptions) ---
	if ks := os.Getenv("SCYLLA_KS_USERS_KEYSPACE"); ks != "" {
		configs[ks] = ScyllaKeyspaceConfig{
			Hosts:       hosts,
			Keyspace:    ks,
			Username:    os.Getenv("SCYLLA_KS_USERS_ROLE"),
			Password:    os.Getenv("SCYLLA_KS_USERS_PASSWORD"),
			SSLEnabled:  sslEnabled,
			CACertPath:  caPath,
			Timeout:     timeout,
			NumConns:    numConns,
			Consistency: consistency,
		}
	}

	// --- Keyspace Lojas (stores, stores_by_owner, products, products_by_store) ---
	if ks := os.Getenv("SCYLLA_KS_STORES_KEYSPACE"); ks != "" {
		configs[ks] = ScyllaKeyspaceConfig{
			Hosts:       hosts,
			Keyspace:    ks,
			Username:    os.Getenv("SCYLLA_KS_STORES_ROLE"),
			Password:    os.Getenv("SCYLLA_KS_STORES_PASSWORD"),
			SSLEnabled:  sslEnabled,
			CACertPath:  caPath,
			Timeout:     timeout,
			NumConns:    numConns,
			Consistency: consistency,
		}
	}

	// --- Keyspace Pedidos (orders, orders_by_store) ---
	if ks := os.Getenv("SCYLLA_KS_ORDERS_KEYSPACE"); ks != "" {
		configs[ks] = ScyllaKeyspaceConfig{
			Hosts:       hosts,
			Keyspace:    ks,
			Username:    os.Getenv("SCYLLA_KS_ORDERS_ROLE"),
			Password:    os.Getenv("SCYLLA_KS_ORDERS_PASSWORD"),
			SSLEnabled:  sslEnabled,
			CACertPath:  caPath,
			Timeout:     timeout,
			NumConns:    numConns,
			Consistency: consistency,
		}
	}

	return configs
}

// createScyllaCluster cria a configuração de cluster para um keyspace
func createScyllaCluster(config ScyllaKeyspaceConfig) (*gocql.ClusterConfig, error) {
	cluster := gocql.NewCluster(config.Hosts...)
	cluster.Keyspace = config.Keyspace
	cluster.Consistency = config.Consistency
	cluster.Timeout = config.Timeout
	cluster.NumConns = config.NumConns

	cluster.MaxWaitSchemaAgreement = 30 * time.Second
	cluster.ReconnectInterval = 1 * time.Second
	cluster.Authenticator = gocql.PasswordAuthenticator{
		Username: config.Username,
		Password: config.Password,
	}

	if config.SSLEnabled && config.CACertPath != "" {
		caCert, err := os.ReadFile(config.CACertPath)
		if err != nil {
			return nil, fmt.Errorf("não foi possível ler o certificado CA: %v", err)
		}

		caCertPool := x509.NewCertPool()
		if !caCertPool.AppendCertsFromPEM(caCert) {
			return nil, fmt.Errorf("não foi possível parsear o certificado CA")
		}
	}

	cluster.PoolConfig.HostSelectionPolicy = gocql.TokenAwareHostPolicy(gocql.RoundRobinHostPolicy())

	return cluster, nil
}

// GetSession devolve uma sessão para o keyspace dado
func (sm *ScyllaManager) GetSession(keyspace string) (*gocql.Session, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	config, exists := sm.configs[keyspace]
	if !exists {
		return nil, fmt.Errorf("keyspace '%s' não configurado", keyspace)
	}

	// Se a sessão já existe e responde, reutiliza
	if session, exists := sm.sessions[keyspace]; exists {
		if err := session.Query("SELECT now() FROM system.local").Exec(); err == nil {
			return session, nil
		}
		session.Close()
	}

	cluster, err := createScyllaCluster(config)
	if err != nil {
		return nil, fmt.Errorf("erro na configuração do cluster para %s: %v", keyspace, err)
	}

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("erro criando sessão para %s: %v", keyspace, err)
	}

	sm.sessions[keyspace] = session
	log.Printf("✅ Nova sessão ScyllaDB para keyspace '%s' (usuário: %s)",
		keyspace, config.Username)

	return session, nil
}

// CloseScylla fecha todas as sessões ScyllaDB
func CloseScylla() {
	Scylla.mu.Lock()
	defer Scylla.mu.Unlock()

	for keyspace, session := range Scylla.sessions {
		session.Close()
		log.Printf("🔌 Sessão ScyllaDB fechada para keyspace '%s'", keyspace)
	}
}

// =============================================
// HELPERS DE ACESSO ÀS SESSÕES
// =============================================

// GetUsersSession devolve a sessão do keyspace de usuários/assinaturas
func GetUsersSession() (*gocql.Session, error) {
	keyspace := os.Getenv("SCYLLA_KS_USERS_KEYSPACE")
	if keyspace == "" {
		return nil, fmt.Errorf("SCYLLA_KS_USERS_KEYSPACE não configurado")
	}
	return Scylla.GetSession(keyspace)
}

// GetStoresSession devolve a sessão do keyspace de lojas/produtos
func GetStoresSession() (*gocql.Session, error) {
	keyspace := os.Getenv("SCYLLA_KS_STORES_KEYSPACE")
	if keyspace == "" {
		return nil, fmt.Errorf("SCYLLA_KS_STORES_KEYSPACE não configurado")
	}
	return Scylla.GetSession(keyspace)
}

// GetOrdersSession devolve a sessão do keyspace de pedidos
func GetOrdersSession() (*gocql.Session, error) {
	keyspace := os.Getenv("SCYLLA_KS_ORDERS_KEYSPACE")
	if keyspace == "" {
		return nil, fmt.Errorf("SCYLLA_KS_ORDERS_KEYSPACE não configurado")
	}
	return Scylla.GetSession(keyspace)
}

// =============================================
// REDIS
// =============================================
func connectRedis(ctx context.Context) {
	Redis = redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_HOST"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	RedisClient = Redis // Alias para compatibilidade

	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Fatal("❌ Erro na conexão com o Redis:", err)
	}
	log.Println("✅ Conectado ao Redis")
}

// =============================================
// ELASTICSEARCH
// =============================================
func connectElastic() {
	elasticURL := os.Getenv("ELASTIC_URL")
	if elasticURL == "" {
		log.Println("⚠️ ELASTIC_URL não configurado — busca de produtos desativada")
		return
	}

	cfg := elasticsearch.Config{
		Addresses: []string{elasticURL},
		Username:  os.Getenv("ELASTIC_USER"),
		Password:  os.Getenv("ELASTIC_PASSWORD"),
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		log.Fatal("❌ Erro criando cliente Elasticsearch:", err)
	}

	res, err := client.Info()
	if err != nil {
		log.Fatal("❌ Erro na conexão com o Elasticsearch:", err)
	}
	defer res.Body.Close()

	Elastic = client
	log.Println("✅ Conectado ao Elasticsearch")
}

// =============================================
// MINIO
// =============================================
func connectMinIO(ctx context.Context) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	accessKey := os.Getenv("MINIO_ACCESS_KEY")
	secretKey := os.Getenv("MINIO_SECRET_KEY")
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		log.Fatal("❌ Erro na conexão com o MinIO:", err)
	}

	bucketName := os.Getenv("MINIO_BUCKET")
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		log.Fatal("❌ Erro verificando bucket MinIO:", err)
	}
	if !exists {
		err = client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			log.Fatal("❌ Erro criando bucket MinIO:", err)
		}
		log.Println("🪣 Bucket criado:", bucketName)
	} else {
		log.Println("🪣 Bucket MinIO já existe:", bucketName)
	}

	MinIO = client
	log.Println("✅ Conectado ao MinIO:", endpoint)
}
