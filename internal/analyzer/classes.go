package analyzer

// SpecialChars is the symbol set counted as the special character class.
const SpecialChars = `!@#$%^&*()_+-=[]{};'"\|,.<>/?`

// CommonPasswords is the fixed denylist of widely known weak passwords.
var CommonPasswords = []string{
	"password", "123456", "12345678", "1234", "qwerty", "12345",
	"dragon", "football", "baseball", "letmein", "monkey",
	"shadow", "master", "hello", "password1", "admin",
}

// Charset sizes used for entropy and keyspace estimates.
const (
	lowerCharset   = 26
	upperCharset   = 26
	digitCharset   = 10
	specialCharset = 32
)

var specialSet = func() [128]bool {
	var set [128]bool
	for i := 0; i < len(SpecialChars); i++ {
		set[SpecialChars[i]] = true
	}
	return set
}()

func isUpper(u uint16) bool { return u >= 'A' && u <= 'Z' }

func isLower(u uint16) bool { return u >= 'a' && u <= 'z' }

func isDigit(u uint16) bool { return u >= '0' && u <= '9' }

func isSpecial(u uint16) bool { return u < 128 && specialSet[u] }

func isAlnum(u uint16) bool { return isUpper(u) || isLower(u) || isDigit(u) }
