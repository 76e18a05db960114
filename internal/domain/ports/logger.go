package ports

// Logger define a interface de logging estruturado usada pelos serviços
// e pela infraestrutura. With devolve um logger com campos pré-anexados.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	With(args ...any) Logger
}
