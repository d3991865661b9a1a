// Command provision inserts a PayPay account row into the store.
// Account provisioning is an operator task, no chat command exposes it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/paypay-hub/paypay-admin-bot/accounts"
	"github.com/paypay-hub/paypay-admin-bot/configs"
	"github.com/paypay-hub/paypay-admin-bot/datastore/gorm"
)

func main() {
	var (
		id    string
		phone string
		pass  string
		duuid string
		cuuid string
		proxy string
	)

	flag.StringVar(&id, "id", "", "account identifier (required)")
	flag.StringVar(&phone, "phone", "", "login phone number (required)")
	flag.StringVar(&pass, "pass", "", "login password (required)")
	flag.StringVar(&duuid, "duuid", "", "device uuid, generated when omitted")
	flag.StringVar(&cuuid, "cuuid", "", "client uuid, generated when omitted")
	flag.StringVar(&proxy, "proxy", "", "optional outbound proxy url")
	flag.Parse()

	if id == "" || phone == "" || pass == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := configs.Parse()
	if err != nil {
		log.Fatal(err)
	}

	db, err := gorm.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer gorm.Close(db)

	if err := gorm.Migrate(db); err != nil {
		log.Fatal(err)
	}

	if duuid == "" {
		duuid = uuid.NewString()
	}
	if cuuid == "" {
		cuuid = uuid.NewString()
	}

	service := accounts.NewService(accounts.NewGormStore(db))

	a := accounts.Account{
		ID:         id,
		Phone:      phone,
		Pass:       pass,
		DeviceUUID: duuid,
		ClientUUID: cuuid,
		Proxy:      proxy,
	}

	if err := service.Create(&a); err != nil {
		log.Fatal(err)
	}

	m := a.Masked()
	fmt.Printf("provisioned account %s (duuid %s, cuuid %s, proxy %s)\n",
		m.ID, m.DeviceUUID, m.ClientUUID, m.Proxy)
}
