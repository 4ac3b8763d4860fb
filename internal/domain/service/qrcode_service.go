package service

// QRCodeService generates referral invite QR codes.
type QRCodeService interface {
	// GenerateReferralQR renders the join link for a referral code as a
	// PNG image.
	GenerateReferralQR(referralCode string) ([]byte, error)
}
