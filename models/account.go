package models

type Account struct {
	ID            int    `json:"id"`
	Phone         string `json:"phone"`
	ApiID         int    `json:"api_id"`
	ApiHash       string `json:"api_hash"`
	Name          string `json:"name"`            // Отображаемое имя аккаунта в списках
	IsAuthorized  bool   `json:"is_authorized"`   // Пройдена ли авторизация в Telegram
	PhoneCodeHash string `json:"phone_code_hash"` // Хеш кода подтверждения между SendCode и SignIn
	TwoFAPassword string `json:"two_fa_password"` // Пароль облачной двухфакторной защиты, может быть пустым
	ProxyID       *int   `json:"proxy_id"`
	Proxy         *Proxy `json:"proxy"`
}
