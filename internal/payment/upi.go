// Package payment construit le lien d'intention de paiement UPI et son rendu QR.
// Le lien est la seule sortie du système côté paiement : aucune confirmation de
// transaction n'existe ici.
package payment

import (
	"fmt"
	"net/url"
)

// BuildUPILink construit le deep link UPI :
//
//	upi://pay?pa=<collecteur>&pn=<nom encodé>&am=<montant, 2 décimales>&tn=<note encodée>
//
// Le montant est toujours formaté avec exactement deux décimales. Fonction pure,
// aucune E/S.
func BuildUPILink(pa, pn string, amount float64, tn string) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%.2f&tn=%s",
		pa, url.QueryEscape(pn), amount, url.QueryEscape(tn))
}
