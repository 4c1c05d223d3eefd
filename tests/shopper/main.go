package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/handler"
	"github.com/SergeyBogomolovv/shop-service/internal/middleware"
)

// Генератор покупок: случайные пользователи наполняют корзину, оформляют заказ
// и скачивают счет.

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

var (
	baseURL = env("SHOP_URL", "http://localhost:8080")
	secret  = env("JWT_SECRET", "")
)

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func randomUser() entities.User {
	id := "user_" + randomString(8)
	return entities.User{ID: id, Email: id + "@example.com"}
}

type client struct {
	http  *http.Client
	token string
}

func (c *client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.http.Do(req)
}

func shop(ctx context.Context, products []handler.Product) error {
	user := randomUser()
	token, err := middleware.IssueToken(secret, user, time.Hour)
	if err != nil {
		return err
	}
	c := &client{http: &http.Client{Timeout: 10 * time.Second}, token: token}

	for range rand.Intn(4) + 1 {
		p := products[rand.Intn(len(products))]
		quantity := rand.Intn(3) + 1
		resp, err := c.do(ctx, http.MethodPost, "/cart/items", handler.AddCartItemRequest{ProductID: p.ID, Quantity: &quantity})
		if err != nil {
			return err
		}
		resp.Body.Close()
	}

	resp, err := c.do(ctx, http.MethodPost, "/orders", nil)
	if err != nil {
		return err
	}
	var order handler.CheckoutResponse
	err = json.NewDecoder(resp.Body).Decode(&order)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("checkout %s: %w", resp.Status, err)
	}
	log.Println("order placed", order.ID, "total", order.Total, order.Warning)

	resp, err = c.do(ctx, http.MethodGet, "/orders/"+order.ID+"/invoice", nil)
	if err != nil {
		return err
	}
	n, _ := io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	log.Println("invoice", order.ID, "->", resp.Status, n, "bytes")
	return nil
}

func loadProducts(ctx context.Context) ([]handler.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/products", nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var products []handler.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}
	return products, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	products, err := loadProducts(ctx)
	if err != nil {
		log.Fatal("failed to load products: ", err)
	}

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			if err := shop(ctx, products); err != nil {
				log.Println("shopping failed:", err)
			}
		case <-ctx.Done():
			return
		}
	}
}
