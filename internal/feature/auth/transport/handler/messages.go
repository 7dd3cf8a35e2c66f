package handler

// User-facing message catalog. The game's audience is Turkish, so the texts
// are kept verbatim; the error conditions stay individually distinguishable.
const (
	msgFieldsRequired   = "Kullanıcı adı ve şifre gerekli!"
	msgUsernameTooShort = "Kullanıcı adı en az 3 karakter olmalı!"
	msgPasswordTooShort = "Şifre en az 6 karakter olmalı!"
	msgUsernameTaken    = "Bu kullanıcı adı zaten kullanılıyor!"
	msgBadCredentials   = "Geçersiz kullanıcı adı veya şifre!"
	msgRegisterOK       = "Kayıt başarılı! Oyuna yönlendiriliyorsunuz..."
	msgLoginOK          = "Giriş başarılı! Oyuna yönlendiriliyorsunuz..."
	msgLogoutOK         = "Çıkış yapıldı!"
	msgInternalError    = "Internal server error"
)
