package Constants

// WhatsappGoService is the base URL of the WhatsApp bridge used for OTP
// delivery and booking confirmations.
const WhatsappGoService = "http://localhost:3000"

// ConsultationFee is charged once per booked consultation, in INR.
const ConsultationFee float64 = 499

const Currency = "INR"
