package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/Eduardo-brito329/Menu-Web/internal/database"
	"github.com/Eduardo-brito329/Menu-Web/internal/models"
)

const productIndex = "products"

//
// --- INDEXAÇÃO NO ELASTICSEARCH ---
//

// IndexProduct indexa um produto do catálogo no Elasticsearch.
// Sem cliente configurado vira no-op — a busca é opcional.
func IndexProduct(p models.Product) {
	if database.Elastic == nil {
		return
	}

	data, _ := json.Marshal(p)
	req := esapi.IndexRequest{
		Index:      productIndex,
		DocumentID: p.ID.String(),
		Body:       bytes.NewReader(data),
		Refresh:    "true",
	}

	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		log.Println("❌ Erro enviando para o Elastic:", err)
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Printf("⚠️ Elastic devolveu erro para %s: %s", p.Name, res.String())
	}
}

// RemoveProductFromIndex tira o produto do índice quando ele é excluído
func RemoveProductFromIndex(productID string) {
	if database.Elastic == nil {
		return
	}

	req := esapi.DeleteRequest{Index: productIndex, DocumentID: productID}
	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		log.Println("❌ Erro removendo do Elastic:", err)
		return
	}
	res.Body.Close()
}

//
// --- BUSCA NO ELASTICSEARCH ---
//

// SearchProducts busca produtos da loja por nome, descrição ou categoria
func SearchProducts(storeID, query string) ([]map[string]interface{}, error) {
	if database.Elastic == nil {
		return nil, errors.New("cliente Elasticsearch não inicializado")
	}

	var buf bytes.Buffer
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": map[string]interface{}{
					"multi_match": map[string]interface{}{
						"query":  query,
						"fields": []string{"name", "description", "category"},
					},
				},
				"filter": map[string]interface{}{
					"term": map[string]interface{}{"store_id": storeID},
				},
			},
		},
	}

	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("erro codificando a busca: %v", err)
	}

	req := esapi.SearchRequest{
		Index: []string{productIndex},
		Body:  &buf,
	}
	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		return nil, fmt.Errorf("erro na busca Elastic: %v", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e map[string]interface{}
		json.NewDecoder(res.Body).Decode(&e)
		log.Printf("❌ Erro do Elasticsearch: %+v", e)
		return nil, errors.New("índice não encontrado ou vazio")
	}

	var r map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("erro decodificando JSON: %v", err)
	}

	hitsData, ok := r["hits"].(map[string]interface{})
	if !ok {
		return nil, errors.New("resposta do Elastic inválida (sem hits)")
	}

	hitsArray, ok := hitsData["hits"].([]interface{})
	if !ok {
		return nil, errors.New("nenhum resultado encontrado")
	}

	results := make([]map[string]interface{}, 0, len(hitsArray))
	for _, hit := range hitsArray {
		hitMap, _ := hit.(map[string]interface{})
		if source, ok := hitMap["_source"].(map[string]interface{}); ok {
			results = append(results, source)
		}
	}

	return results, nil
}
