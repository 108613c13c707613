package holidayapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент внешнего календаря государственных праздников
type Client struct {
	baseURL     string
	countryCode string
	httpClient  *http.Client
	log         Logger
}

// NewClient создает новый экземпляр клиента календаря праздников
func NewClient(baseURL, countryCode string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:     baseURL,
		countryCode: countryCode,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetHolidays получает список праздников на указанный год
func (c *Client) GetHolidays(ctx context.Context, year int) ([]domain.Holiday, error) {
	url := fmt.Sprintf("%s/api/v3/PublicHolidays/%d/%s", c.baseURL, year, c.countryCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNoContent:
		// Для страны нет данных на этот год
		return []domain.Holiday{}, nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var dtos []holidayDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	holidays := make([]domain.Holiday, 0, len(dtos))
	for _, dto := range dtos {
		date, err := time.Parse(domain.DateFormat, dto.Date)
		if err != nil {
			// Некорректную запись пропускаем, остальные праздники важнее
			c.log.Warn("GetHolidays: skipping holiday with invalid date %q", dto.Date)
			continue
		}

		name := dto.LocalName
		if name == "" {
			name = dto.Name
		}

		holidays = append(holidays, domain.Holiday{
			Date: date,
			Name: name,
		})
	}

	return holidays, nil
}

// GetHolidaysWithGracefulDegradation получает праздники с graceful degradation
// При недоступности источника возвращает ErrServiceDegraded: календарь должен
// показать дни без пометки праздника, а не упасть целиком
func (c *Client) GetHolidaysWithGracefulDegradation(ctx context.Context, year int) ([]domain.Holiday, error) {
	holidays, err := c.GetHolidays(ctx, year)
	if err != nil {
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("HolidayAPI unavailable, applying graceful degradation for year=%d: %v", year, err)
		return nil, fmt.Errorf("%w: year=%d, error=%v", ErrServiceDegraded, year, err)
	}

	c.log.Info("Successfully fetched %d holidays for year=%d", len(holidays), year)
	return holidays, nil
}
