// Package fiscal valida identificadores fiscales aceptados por el gateway.
package fiscal

// ValidNIF verifica el NIF portugués: 9 dígitos con dígito de control
// módulo 11 calculado sobre los primeros 8.
func ValidNIF(nif string) bool {
	if len(nif) != 9 {
		return false
	}
	sum := 0
	for i := 0; i < 8; i++ {
		d := nif[i]
		if d < '0' || d > '9' {
			return false
		}
		sum += int(d-'0') * (9 - i)
	}
	last := nif[8]
	if last < '0' || last > '9' {
		return false
	}
	check := 11 - sum%11
	if check >= 10 {
		check = 0
	}
	return check == int(last-'0')
}
