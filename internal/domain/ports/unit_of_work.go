package ports

import "context"

// UnitOfWork define a interface para gerenciamento de transações.
// As duas unidades atômicas do portal (troca de imagem principal e
// registro de venda) rodam inteiras dentro de WithTransaction.
type UnitOfWork interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
