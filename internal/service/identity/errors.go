package identity

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных email или пароле
	ErrInvalidInput = errors.New("identity.service: invalid input data")

	// ErrEmailTaken возвращается при повторной регистрации email
	ErrEmailTaken = errors.New("identity.service: email already registered")

	// ErrAdminEmailReserved возвращается при попытке самостоятельно зарегистрировать email администратора
	ErrAdminEmailReserved = errors.New("identity.service: email is reserved for clinic staff")

	// ErrInvalidAdminSeed возвращается при некорректном хеше пароля администраторов
	ErrInvalidAdminSeed = errors.New("identity.service: invalid admin password hash")

	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	ErrInvalidCredentials = errors.New("identity.service: invalid email or password")

	// ErrUserNotFound возвращается, когда учетная запись из токена не найдена
	ErrUserNotFound = errors.New("identity.service: user not found")

	// ErrInvalidToken возвращается при неверном или просроченном токене
	ErrInvalidToken = errors.New("identity.service: invalid token")

	// ErrTokenExpired возвращается при просроченном токене
	ErrTokenExpired = errors.New("identity.service: token expired")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("identity.service: internal error")
)
