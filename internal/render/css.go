// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

// baseStylesheet is the shared component stylesheet injected into every
// rendered page. Class names line up with the tokens produced by
// internal/style. Interactive behaviors (accordion, lightbox, carousel
// scroll loop) are CSS-only so rendered pages need no script.
const baseStylesheet = `
*{box-sizing:border-box;margin:0}
body{font-family:var(--font-body);color:var(--color-text);background:var(--color-background)}
h1,h2,h3,h4{font-family:var(--font-heading)}
img{max-width:100%}

.section{position:relative;overflow:hidden}
.pad-none{padding:0 1rem}
.pad-sm{padding:2rem 1rem}
.pad-md{padding:3rem 1rem}
.pad-lg{padding:4rem 1rem}
.pad-xl{padding:5rem 1rem}
.pad-2xl{padding:6rem 1rem}
.gap-sm{margin:1rem 0}
.gap-md{margin:2rem 0}
.gap-lg{margin:3rem 0}
.gap-xl{margin:4rem 0}

.container-xs{max-width:28rem;margin:0 auto}
.container-sm{max-width:32rem;margin:0 auto}
.container-md{max-width:42rem;margin:0 auto}
.container-narrow{max-width:48rem;margin:0 auto}
.container-lg{max-width:56rem;margin:0 auto}
.container{max-width:80rem;margin:0 auto}
.container-wide{max-width:96rem;margin:0 auto}
.container-xl{max-width:100rem;margin:0 auto}
.container-2xl{max-width:112.5rem;margin:0 auto}
.container-full{width:100%;padding:0 1rem}
.container-screen{width:100vw}

.align-left{text-align:left}
.align-center{text-align:center}
.align-right{text-align:right}

.grid{display:grid;gap:2rem}
.cols-1{grid-template-columns:1fr}
.cols-2{grid-template-columns:repeat(2,1fr)}
.cols-3{grid-template-columns:repeat(3,1fr)}
.cols-4{grid-template-columns:repeat(4,1fr)}
.cols-5{grid-template-columns:repeat(5,1fr)}
.cols-6{grid-template-columns:repeat(6,1fr)}
@media(max-width:900px){.cols-3,.cols-4,.cols-5,.cols-6{grid-template-columns:repeat(2,1fr)}}
@media(max-width:600px){.grid{grid-template-columns:1fr}}

.section-header{max-width:48rem;margin:0 auto 3rem}
.eyebrow{color:var(--color-primary);text-transform:uppercase;letter-spacing:.1em;font-size:.875rem;font-weight:600;margin-bottom:1rem}
.section-title{font-size:2.25rem;font-weight:700;margin-bottom:1rem}
.section-description{color:var(--color-text-muted);font-size:1.125rem}
.on-dark{color:#ffffff}
.on-dark-muted{color:rgba(255,255,255,0.9)}

.btn{display:inline-block;padding:.75rem 1.75rem;border-radius:var(--border-radius);font-weight:600;text-decoration:none;transition:opacity .2s}
.btn:hover{opacity:.9}
.btn-primary{background:var(--color-primary);color:#fff}
.btn-outline{background:transparent;border:2px solid var(--color-primary);color:var(--color-primary)}
.btn-outline.on-dark{border-color:#fff;color:#fff}

.card{background:var(--color-surface);border-radius:var(--border-radius);box-shadow:var(--shadow);padding:1.5rem}

.anim{animation-duration:.8s;animation-fill-mode:both}
.anim-fadeIn{animation-name:ps-fadeIn}
.anim-fadeInUp{animation-name:ps-fadeInUp}
.anim-fadeInDown{animation-name:ps-fadeInDown}
.anim-slideInLeft{animation-name:ps-slideInLeft}
.anim-slideInRight{animation-name:ps-slideInRight}
.anim-zoomIn{animation-name:ps-zoomIn}
@keyframes ps-fadeIn{from{opacity:0}to{opacity:1}}
@keyframes ps-fadeInUp{from{opacity:0;transform:translateY(24px)}to{opacity:1;transform:none}}
@keyframes ps-fadeInDown{from{opacity:0;transform:translateY(-24px)}to{opacity:1;transform:none}}
@keyframes ps-slideInLeft{from{opacity:0;transform:translateX(-32px)}to{opacity:1;transform:none}}
@keyframes ps-slideInRight{from{opacity:0;transform:translateX(32px)}to{opacity:1;transform:none}}
@keyframes ps-zoomIn{from{opacity:0;transform:scale(.92)}to{opacity:1;transform:none}}

.hero-title{font-size:3rem;font-weight:700;margin-bottom:1.5rem;max-width:56rem}
.hero-description{font-size:1.25rem;margin-bottom:2rem;max-width:42rem}
.hero-ctas{display:flex;flex-wrap:wrap;gap:1rem}
.hero-image{margin-top:3rem;max-width:64rem}
.hero-image img{border-radius:var(--border-radius);box-shadow:var(--shadow)}
.hero-left{display:flex;flex-direction:column;align-items:flex-start}
.hero-center{display:flex;flex-direction:column;align-items:center}
.hero-right{display:flex;flex-direction:column;align-items:flex-end}

.carousel{display:flex;gap:2rem;overflow-x:auto;scroll-snap-type:x mandatory;padding-bottom:1rem}
.carousel>*{flex:0 0 42%;scroll-snap-align:start}
@media(max-width:600px){.carousel>*{flex-basis:85%}}

.feature-icon{font-size:2rem;margin-bottom:1rem}
.feature-title{font-size:1.25rem;font-weight:600;margin-bottom:.5rem}
.feature-description{color:var(--color-text-muted)}

.plan{position:relative;display:flex;flex-direction:column}
.plan-highlighted{border:2px solid var(--color-primary);transform:scale(1.04)}
.plan-badge{position:absolute;top:-.85rem;left:50%;transform:translateX(-50%);background:var(--color-primary);color:#fff;padding:.25rem 1rem;border-radius:9999px;font-size:.75rem;font-weight:600;white-space:nowrap}
.plan-price{font-size:2.5rem;font-weight:700}
.plan-period{color:var(--color-text-muted);font-size:1rem}
.plan-features{list-style:none;padding:0;margin:1.5rem 0;flex:1;text-align:left}
.plan-features li{padding:.375rem 0}
.plan-features li::before{content:"\2713";color:var(--color-primary);margin-right:.5rem}

.stars{color:var(--color-primary);letter-spacing:.1em;margin-bottom:1rem}
.testimonial-text{font-style:italic;margin-bottom:1.5rem}
.testimonial-author{display:flex;align-items:center;gap:.75rem;text-align:left}
.testimonial-author img{width:3rem;height:3rem;border-radius:9999px;object-fit:cover}
.testimonial-name{font-weight:600}
.testimonial-meta{color:var(--color-text-muted);font-size:.875rem}

.stat-value{font-size:2.5rem;font-weight:700;color:var(--color-primary)}
.stat-label{color:var(--color-text-muted)}

.member-avatar{width:6rem;height:6rem;border-radius:9999px;object-fit:cover;margin:0 auto 1rem}
.member-role{color:var(--color-primary);font-size:.875rem;margin-bottom:.5rem}

.faq-list{display:grid;gap:1rem;text-align:left}
.faq-two-column{grid-template-columns:repeat(2,1fr)}
@media(max-width:700px){.faq-two-column{grid-template-columns:1fr}}
.faq-item{background:var(--color-surface);border-radius:var(--border-radius);padding:1rem 1.5rem}
.faq-item summary{font-weight:600;cursor:pointer;list-style:none}
.faq-item summary::after{content:"+";float:right;color:var(--color-primary)}
.faq-item[open] summary::after{content:"\2212"}
.faq-answer{margin-top:.75rem;color:var(--color-text-muted)}

.gallery-item{display:block;border-radius:var(--border-radius);overflow:hidden}
.gallery-item img{width:100%;height:100%;object-fit:cover;transition:transform .3s}
.gallery-item:hover img{transform:scale(1.04)}
.lightbox{position:fixed;inset:0;background:rgba(0,0,0,.85);display:none;align-items:center;justify-content:center;z-index:50;padding:2rem}
.lightbox:target{display:flex}
.lightbox img{max-height:80vh;border-radius:var(--border-radius)}
.lightbox-caption{position:absolute;bottom:2rem;left:0;right:0;text-align:center;color:#fff}
.lightbox-close{position:absolute;top:1rem;right:1.5rem;color:#fff;font-size:2rem;text-decoration:none}

.logo-grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(8rem,1fr));gap:2.5rem;align-items:center}
.logo-item img{max-height:3rem;width:auto;object-fit:contain;opacity:.9;transition:all .3s}
.logo-gray img{filter:grayscale(1);opacity:.7}
.logo-gray:hover img{filter:none;opacity:1}
.logo-scroll{display:flex;gap:4rem;overflow:hidden}
.logo-track{display:flex;gap:4rem;animation:ps-scroll 30s linear infinite;flex-shrink:0}
@keyframes ps-scroll{from{transform:translateX(0)}to{transform:translateX(-100%)}}

.footer{font-size:.9375rem}
.footer-columns{display:grid;grid-template-columns:repeat(auto-fit,minmax(10rem,1fr));gap:2rem;text-align:left}
.footer-column h4{margin-bottom:1rem}
.footer-column ul{list-style:none;padding:0}
.footer-column li{margin-bottom:.5rem}
.footer-column a{color:inherit;opacity:.8;text-decoration:none}
.footer-column a:hover{opacity:1}
.footer-social{display:flex;gap:1rem;margin-top:1.5rem}
.footer-social a{opacity:.8;text-decoration:none;color:inherit}
.footer-copyright{margin-top:2.5rem;padding-top:1.5rem;border-top:1px solid rgba(128,128,128,.3);opacity:.7}

.contact-details{display:grid;gap:.75rem;margin-top:1.5rem}
.contact-form{display:grid;gap:1rem;max-width:28rem;margin:2rem auto 0;text-align:left}
.contact-form input,.contact-form textarea{padding:.75rem 1rem;border:1px solid rgba(128,128,128,.4);border-radius:var(--border-radius);font:inherit}

.newsletter-form{display:flex;gap:.75rem;max-width:28rem;margin:1.5rem auto 0}
.newsletter-form input{flex:1;padding:.75rem 1rem;border:1px solid rgba(128,128,128,.4);border-radius:var(--border-radius);font:inherit}

.video-frame{position:relative;aspect-ratio:16/9;border-radius:var(--border-radius);overflow:hidden;box-shadow:var(--shadow)}
.video-frame iframe,.video-frame video{position:absolute;inset:0;width:100%;height:100%;border:0}

.content-body{line-height:1.7}
.content-body p{margin-bottom:1rem}
.content-body h2,.content-body h3{margin:1.5rem 0 .75rem}
.content-body pre{padding:1rem;border-radius:var(--border-radius);overflow-x:auto}

.placeholder{padding:5rem 1rem;text-align:center}
.placeholder-pending{background:#f3f4f6;color:#6b7280}
.placeholder-error{background:#fef2f2;color:#ef4444}
`
