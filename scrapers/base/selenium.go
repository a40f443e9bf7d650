package base

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/raushankrgupta/product-card-splicer/models"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
)

// FetchDocumentSelenium loads the URL in a ChromeDriver-controlled browser and parses the page source
func (b *BaseScraper) FetchDocumentSelenium(url string) (*goquery.Document, error) {
	port := b.SeleniumPort
	if port == 0 {
		port = 4444
	}

	service, err := selenium.NewChromeDriverService(b.ChromeDriverPath, port)
	if err != nil {
		return nil, &models.FetchError{URL: url, Err: fmt.Errorf("error starting Chrome driver service: %w", err)}
	}
	defer service.Stop()

	caps := selenium.Capabilities{"browserName": "chrome"}
	caps.AddChrome(chrome.Capabilities{
		Args: []string{
			"--headless=new",
			"--no-sandbox",
			"--disable-dev-shm-usage",
			"--disable-gpu",
			"--window-size=1920,1080",
			fmt.Sprintf("--user-agent=%s", userAgent),
		},
	})

	driver, err := selenium.NewRemote(caps, fmt.Sprintf("http://localhost:%d/wd/hub", port))
	if err != nil {
		return nil, &models.FetchError{URL: url, Err: fmt.Errorf("error creating WebDriver: %w", err)}
	}
	defer driver.Quit()

	if err := driver.SetPageLoadTimeout(60 * time.Second); err != nil {
		return nil, &models.FetchError{URL: url, Err: err}
	}
	if err := driver.Get(url); err != nil {
		return nil, &models.FetchError{URL: url, Err: fmt.Errorf("navigation error: %w", err)}
	}

	html, err := driver.PageSource()
	if err != nil {
		return nil, &models.FetchError{URL: url, Err: fmt.Errorf("page source error: %w", err)}
	}

	return goquery.NewDocumentFromReader(strings.NewReader(html))
}
