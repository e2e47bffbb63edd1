package response

const (
	StatusOK                  = "200"
	StatusBadRequest          = "400"
	StatusNotFound            = "404"
	StatusInternalServerError = "500"
)

// StatusText returns the reason phrase for code. Codes outside the known
// set read as "Bad Request".
func StatusText(code string) string {
	switch code {
	case StatusOK:
		return "OK"
	case StatusNotFound:
		return "Not Found"
	case StatusInternalServerError:
		return "Internal Server Error"
	default:
		return "Bad Request"
	}
}
