package ports

import (
	"context"
	"io"
)

// BlobStore define a interface para o armazenamento externo de binários
// (fotos de imóveis, avatares). As linhas de Image/User guardam apenas a
// chave do objeto e a URL.
type BlobStore interface {
	// Upload grava o objeto e retorna a chave e a URL pública
	Upload(ctx context.Context, prefix, fileName string, reader io.Reader, size int64) (objectKey string, url string, err error)
	// Remove apaga o objeto; chaves desconhecidas não são erro
	Remove(ctx context.Context, objectKey string) error
}
