package domain

import "time"

// HeroSlide is an editorial slide shown on the landing page.
type HeroSlide struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle,omitempty"`
	CTAText         string `json:"ctaText,omitempty"`
	CTALink         string `json:"ctaLink,omitempty"`
	BackgroundImage string `json:"backgroundImage,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	Order           int    `json:"order"`
	ShopifyHandle   string `json:"shopifyHandle,omitempty"`
	LinkType        string `json:"linkType,omitempty"`
}

type GalleryItem struct {
	ID              string `json:"id"`
	Title           string `json:"title,omitempty"`
	Description     string `json:"description,omitempty"`
	Image           string `json:"image,omitempty"`
	Type            string `json:"type"`
	Category        string `json:"category,omitempty"`
	Quote           string `json:"quote,omitempty"`
	Author          string `json:"author,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	Featured        bool   `json:"featured"`
	Link            string `json:"link,omitempty"`
}

// Page is a CMS page. Content is rich text passed through as-is.
type Page struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Slug            string      `json:"slug"`
	Content         interface{} `json:"content,omitempty"`
	MetaTitle       string      `json:"metaTitle,omitempty"`
	MetaDescription string      `json:"metaDescription,omitempty"`
	HeroImage       string      `json:"heroImage,omitempty"`
}

type BlogPost struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Slug            string      `json:"slug"`
	Excerpt         string      `json:"excerpt,omitempty"`
	Content         interface{} `json:"content,omitempty"`
	Author          string      `json:"author,omitempty"`
	PublishDate     *time.Time  `json:"publishDate,omitempty"`
	FeaturedImage   string      `json:"featuredImage,omitempty"`
	Tags            []string    `json:"tags"`
	RelatedProducts []string    `json:"relatedProducts,omitempty"`
}

type Testimonial struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Content       string `json:"content"`
	Rating        int    `json:"rating,omitempty"`
	Location      string `json:"location,omitempty"`
	ProductHandle string `json:"productHandle,omitempty"`
	Featured      bool   `json:"featured"`
}

type AnnouncementBar struct {
	ID              string `json:"id"`
	Text            string `json:"text"`
	Link            string `json:"link,omitempty"`
	LinkText        string `json:"linkText,omitempty"`
	Active          bool   `json:"active"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
	Dismissible     bool   `json:"dismissible"`
}

type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
}

type ContactInfo struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Hours   string `json:"hours,omitempty"`
}

type SiteSettings struct {
	ID                    string      `json:"id"`
	SiteName              string      `json:"siteName"`
	Tagline               string      `json:"tagline,omitempty"`
	HeroTitle             string      `json:"heroTitle,omitempty"`
	HeroSubtitle          string      `json:"heroSubtitle,omitempty"`
	FreeShippingThreshold *float64    `json:"freeShippingThreshold,omitempty"`
	SubscriptionDiscount  *float64    `json:"subscriptionDiscount,omitempty"`
	SocialLinks           SocialLinks `json:"socialLinks"`
	ContactInfo           ContactInfo `json:"contactInfo"`
	FooterContent         interface{} `json:"footerContent,omitempty"`
}

type FAQ struct {
	ID       string      `json:"id"`
	Question string      `json:"question"`
	Answer   interface{} `json:"answer,omitempty"`
	Category string      `json:"category,omitempty"`
	Order    int         `json:"order"`
}
