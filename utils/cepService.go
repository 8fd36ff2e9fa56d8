package utils

import (
	"fmt"

	"github.com/go-resty/resty/v2"

	"studiofit/config"
)

// CepAddress is the address returned by the postal code service
type CepAddress struct {
	Cep      string `json:"cep"`
	Street   string `json:"logradouro"`
	District string `json:"bairro"`
	City     string `json:"localidade"`
	State    string `json:"uf"`
	Error    bool   `json:"erro"`
}

// LookupCep resolves a Brazilian postal code to an address via ViaCEP
func LookupCep(cep string) (*CepAddress, error) {
	client := resty.New()

	var address CepAddress
	resp, err := client.R().
		SetResult(&address).
		Get(fmt.Sprintf("%s/%s/json", config.AppConfig.CepApiURL, cep))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("cep lookup failed, code: %d", resp.StatusCode())
	}
	if address.Error {
		return nil, fmt.Errorf("cep %s not found", cep)
	}

	return &address, nil
}
