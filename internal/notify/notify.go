package notify

import "github.com/rs/zerolog"

// Notifier канал пользовательских уведомлений об успехе или ошибке операции
// (аналог всплывающих сообщений веб-интерфейса). Выход односторонний:
// вызывающий не ждёт ответа и не зависит от результата доставки.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Log пишет уведомления в структурированный лог
type Log struct {
	log zerolog.Logger
}

func NewLog(log zerolog.Logger) *Log {
	return &Log{log: log}
}

func (l *Log) Success(msg string) {
	l.log.Info().Str("notification", "success").Msg(msg)
}

func (l *Log) Error(msg string) {
	l.log.Warn().Str("notification", "error").Msg(msg)
}
