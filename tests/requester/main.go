package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"
)

// Нагрузка на выдачу счетов: ORDER_ID и TOKEN берутся из окружения,
// часть запросов идет на случайные id.

var (
	baseURL = "http://localhost:8080/orders/"
	orderID = os.Getenv("ORDER_ID")
	token   = os.Getenv("TOKEN")
)

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomID(length int) string {
	chars := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	id := make([]rune, length)
	for i := range id {
		id[i] = chars[rand.Intn(len(chars))]
	}
	return string(id)
}

func doRequest() {
	id := orderID
	if id == "" || rand.Intn(5) == 0 {
		id = randomID(12)
	}

	url := baseURL + id + "/invoice"
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println("GET", url, "->", resp.Status, resp.Header.Get("Content-Type"))
	resp.Body.Close()
}
