package calendly

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("calendly client: internal error")

	// ErrUnavailable возвращается, когда Calendly недоступен или ответил не 2xx
	ErrUnavailable = errors.New("calendly client: upstream unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("calendly client: invalid response")
)
