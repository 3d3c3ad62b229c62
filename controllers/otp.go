package controllers

import (
	"errors"
	"os"

	"github.com/twilio/twilio-go"
	verify "github.com/twilio/twilio-go/rest/verify/v2"
)

func twilioClient() *twilio.RestClient {
	return twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: os.Getenv("TWILIO_ACCOUNT_SID"),
		Password: os.Getenv("TWILIO_AUTHTOKEN"),
	})
}

// SendOTP asks Twilio Verify to text a one time code to the phone number.
func SendOTP(phone string) error {
	params := verify.CreateVerificationParams{}
	params.SetTo(phone)
	params.SetChannel("sms")

	_, err := twilioClient().VerifyV2.CreateVerification(os.Getenv("TWILIO_SERVICE_ID"), &params)
	return err
}

// CheckOTP verifies the code the user typed against Twilio Verify.
func CheckOTP(phone, code string) error {
	params := verify.CreateVerificationCheckParams{}
	params.SetTo(phone)
	params.SetCode(code)

	resp, err := twilioClient().VerifyV2.CreateVerificationCheck(os.Getenv("TWILIO_SERVICE_ID"), &params)
	if err != nil {
		return err
	}
	if resp.Status == nil || *resp.Status != "approved" {
		return errors.New("OTP not approved")
	}
	return nil
}
