package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"github.com/Eduardo-brito329/Menu-Web/internal/database"
)

// UploadImage sobe a imagem para o MinIO e devolve a URL pública.
// O nome do objeto ganha um UUID para não sobrescrever uploads anteriores.
func UploadImage(folder string, file *multipart.FileHeader) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO não inicializado")
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	bucket := os.Getenv("MINIO_BUCKET")
	objectName := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), path.Ext(file.Filename))

	_, err = database.MinIO.PutObject(context.Background(), bucket, objectName, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}

	scheme := "http"
	if os.Getenv("MINIO_USE_SSL") == "true" {
		scheme = "https"
	}
	url := fmt.Sprintf("%s://%s/%s/%s", scheme, os.Getenv("MINIO_ENDPOINT"), bucket, objectName)
	return url, nil
}
