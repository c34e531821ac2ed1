// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakeapi

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-dashboard/models"
)

type seedUser struct {
	name, username, email, phone, website string
	company, catchPhrase, bs              string
	street, suite, city, zipcode          string
}

var seedUsers = []seedUser{
	{"Leanne Graham", "Bret", "Sincere@april.biz", "1-770-736-8031 x56442", "hildegard.org",
		"Romaguera-Crona", "Multi-layered client-server neural-net", "harness real-time e-markets",
		"Kulas Light", "Apt. 556", "Gwenborough", "92998-3874"},
	{"Ervin Howell", "Antonette", "Shanna@melissa.tv", "010-692-6593 x09125", "anastasia.net",
		"Deckow-Crist", "Proactive didactic contingency", "synergize scalable supply-chains",
		"Victor Plains", "Suite 879", "Wisokyburgh", "90566-7771"},
	{"Clementine Bauch", "Samantha", "Nathan@yesenia.net", "1-463-123-4447", "ramiro.info",
		"Romaguera-Jacobson", "Face to face bifurcated interface", "e-enable strategic applications",
		"Douglas Extension", "Suite 847", "McKenziehaven", "59590-4157"},
	{"Patricia Lebsack", "Karianne", "Julianne.OConner@kory.org", "493-170-9623 x156", "kale.biz",
		"Robel-Corkery", "Multi-tiered zero tolerance productivity", "transition cutting-edge web services",
		"Hoeger Mall", "Apt. 692", "South Elvis", "53919-4257"},
	{"Chelsey Dietrich", "Kamren", "Lucio_Hettinger@annie.ca", "(254)954-1289", "demarco.info",
		"Keebler LLC", "User-centric fault-tolerant solution", "revolutionize end-to-end systems",
		"Skiles Walks", "Suite 351", "Roscoeview", "33263"},
	{"Mrs. Dennis Schulist", "Leopoldo_Corkery", "Karley_Dach@jasper.info", "1-477-935-8478 x6430", "ola.org",
		"Considine-Lockman", "Synchronised bottom-line interface", "e-enable innovative applications",
		"Norberto Crossing", "Apt. 950", "South Christy", "23505-1337"},
	{"Kurtis Weissnat", "Elwyn.Skiles", "Telly.Hoeger@billy.biz", "210.067.6132", "elvis.io",
		"Johns Group", "Configurable multimedia task-force", "generate enterprise e-tailers",
		"Rex Trail", "Suite 280", "Howemouth", "58804-1099"},
	{"Nicholas Runolfsdottir V", "Maxime_Nienow", "Sherwood@rosamond.me", "586.493.6943 x140", "jacynthe.com",
		"Abernathy Group", "Implemented secondary concept", "e-enable extensible e-tailers",
		"Ellsworth Summit", "Suite 729", "Aliyaview", "45169"},
	{"Glenna Reichert", "Delphine", "Chaim_McDermott@dana.io", "(775)976-6794 x41206", "conrad.com",
		"Yost and Sons", "Switchable contextually-based project", "aggregate real-time technologies",
		"Dayna Park", "Suite 449", "Bartholomebury", "76495-3109"},
	{"Clementina DuBuque", "Moriah.Stanton", "Rey.Padberg@karina.biz", "024-648-3804", "ambrose.net",
		"Hoeger LLC", "Centralized empowering task-force", "target end-to-end models",
		"Kattie Turnpike", "Suite 198", "Lebsackbury", "31428-2261"},
}

// Seed returns n users with ids 1..n. The first records match the public
// JSONPlaceholder collection; further ones reuse them with a numeric suffix.
func Seed(n int) []models.User {
	users := make([]models.User, 0, max(n, 0))
	for i := 0; i < max(n, 0); i++ {
		s := seedUsers[i%len(seedUsers)]
		round := i / len(seedUsers)

		name, email := s.name, s.email
		if round > 0 {
			name = fmt.Sprintf("%s %d", s.name, round+1)
			local, domain, _ := strings.Cut(s.email, "@")
			email = fmt.Sprintf("%s+%d@%s", local, round+1, domain)
		}

		users = append(users, models.User{
			ID:       int64(i + 1),
			Name:     name,
			Username: s.username,
			Email:    email,
			Phone:    s.phone,
			Website:  s.website,
			Company: &models.Company{
				Name:        s.company,
				CatchPhrase: s.catchPhrase,
				BS:          s.bs,
			},
			Address: &models.Address{
				Street:  s.street,
				Suite:   s.suite,
				City:    s.city,
				Zipcode: s.zipcode,
			},
		})
	}
	return users
}
